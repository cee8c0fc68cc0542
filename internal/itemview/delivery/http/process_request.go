package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processDetailReq(c *gin.Context) (model.Scope, int64, error) {
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return sc, 0, pkgErrors.NewBadRequest("id must be a positive integer")
	}
	return sc, id, nil
}

func (h *handler) processOwnerListReq(c *gin.Context) (model.Scope, ownerListReq, error) {
	var req ownerListReq
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewBadRequest(err.Error())
	}
	return sc, req, nil
}
