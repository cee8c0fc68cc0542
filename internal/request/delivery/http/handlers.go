package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	"shareit/pkg/response"
)

// Create godoc
// @Summary     Post an item request
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller id"
// @Param       body             body   createReq true "Request data"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rq, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(rq))
}

// ListOwn godoc
// @Summary     List the caller's requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Success     200 {array} requestResp
// @Failure     404 {object} response.Resp "User not found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	requests, err := h.uc.ListOwn(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOwn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(requests))
}

// ListOthers godoc
// @Summary     Page through other users' requests
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Caller id"
// @Param       from             query  int false "Offset"
// @Param       size             query  int false "Page size"
// @Success     200 {array} requestResp
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListOthersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	requests, err := h.uc.ListOthers(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(requests))
}

// Detail godoc
// @Summary     Get a request with its answers
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} requestResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rq, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestResp(rq))
}
