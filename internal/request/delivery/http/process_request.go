package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewBadRequest(err.Error())
	}
	return sc, req, nil
}

func (h *handler) processListOthersReq(c *gin.Context) (model.Scope, listOthersReq, error) {
	var req listOthersReq
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, pkgErrors.NewBadRequest(err.Error())
	}
	return sc, req, nil
}

func (h *handler) processDetailReq(c *gin.Context) (model.Scope, int64, error) {
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return sc, 0, pkgErrors.NewBadRequest("id must be a positive integer")
	}
	return sc, id, nil
}
