package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Detail godoc
// @Summary     Get an item view
// @Description Item with comments; last and next booking are shown to the owner only.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int false "Caller id"
// @Param       id               path   int true  "Item ID"
// @Success     200 {object} itemViewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Build(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Build: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemViewResp(v))
}

// OwnerList godoc
// @Summary     List the caller's items
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true  "Caller id"
// @Param       from             query  int false "Offset"
// @Param       size             query  int false "Page size"
// @Success     200 {array}  itemViewResp
// @Failure     400 {object} response.Resp "Missing header"
// @Router      /items [GET]
func (h *handler) OwnerList(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processOwnerListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.uc.BuildOwnerList(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildOwnerList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(views))
}
