package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Add godoc
// @Summary     Comment on an item
// @Description Requires a finished, approved booking of the item by the caller.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int    true "Caller id"
// @Param       id               path   int    true "Item ID"
// @Param       body             body   addReq true "Comment"
// @Success     200 {object} commentResp
// @Failure     400 {object} response.Resp "No finished booking"
// @Failure     404 {object} response.Resp "User or item not found"
// @Router      /items/{id}/comment [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cm, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommentResp(cm))
}
