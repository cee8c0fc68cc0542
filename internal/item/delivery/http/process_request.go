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

func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, _ := model.GetScopeFromContext(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return sc, req, pkgErrors.NewBadRequest("id must be a positive integer")
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewBadRequest(err.Error())
	}
	req.ID = id
	return sc, req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequest(err.Error())
	}
	return req, nil
}
