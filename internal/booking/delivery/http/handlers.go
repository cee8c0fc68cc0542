package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Description Creates a WAITING booking. Start must be before end and not in the past.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Caller id"
// @Param       body             body   createReq true "Booking request"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Invalid dates, unavailable item or own item"
// @Failure     404 {object} response.Resp "User or item not found"
// @Router      /bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// Approve godoc
// @Summary     Approve or reject a booking
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Caller id (item owner)"
// @Param       id               path   int  true "Booking ID"
// @Param       approved         query  bool true "Decision"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Booking already decided"
// @Failure     404 {object} response.Resp "Not found or not the owner"
// @Router      /bookings/{id} [PATCH]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processApproveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Approve(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Approve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// Detail godoc
// @Summary     Get a booking
// @Description Visible to the booker and the item owner.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Caller id"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Detail(ctx, h.scope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(b))
}

// ListForBooker godoc
// @Summary     List the caller's bookings
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller id"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"
// @Param       from             query  int    false "Offset"
// @Param       size             query  int    false "Page size"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Unknown state"
// @Router      /bookings [GET]
func (h *handler) ListForBooker(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.uc.ListForBooker(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForBooker: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(bookings))
}

// ListForOwner godoc
// @Summary     List bookings of the caller's items
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Caller id"
// @Param       state            query  string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"
// @Param       from             query  int    false "Offset"
// @Param       size             query  int    false "Page size"
// @Success     200 {array}  bookingResp
// @Failure     400 {object} response.Resp "Unknown state"
// @Router      /bookings/owner [GET]
func (h *handler) ListForOwner(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bookings, err := h.uc.ListForOwner(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(bookings))
}
