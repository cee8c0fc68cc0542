package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) scope(c *gin.Context) model.Scope {
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return sc
}

func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Scope{}, req, pkgErrors.NewBadRequest(err.Error())
	}
	return h.scope(c), req, nil
}

func (h *handler) processApproveReq(c *gin.Context) (model.Scope, approveReq, error) {
	var req approveReq
	id, err := h.processIDParam(c)
	if err != nil {
		return model.Scope{}, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Scope{}, req, pkgErrors.NewBadRequest("query parameter approved must be true or false")
	}
	req.ID = id
	return h.scope(c), req, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Scope{}, req, pkgErrors.NewBadRequest(err.Error())
	}
	return h.scope(c), req, nil
}

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewBadRequest("id must be a positive integer")
	}
	return id, nil
}
