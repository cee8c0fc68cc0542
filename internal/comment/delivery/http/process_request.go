package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
)

func (h *handler) processAddReq(c *gin.Context) (model.Scope, addReq, error) {
	var req addReq
	sc, _ := model.GetScopeFromContext(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return sc, req, pkgErrors.NewBadRequest("id must be a positive integer")
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewBadRequest(err.Error())
	}
	req.ItemID = id
	return sc, req, nil
}
