package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingRepo "shareit/internal/booking/repository/postgre"
	bookingUC "shareit/internal/booking/usecase"
	"shareit/internal/comment"
	commentHTTP "shareit/internal/comment/delivery/http"
	commentRepo "shareit/internal/comment/repository/postgre"
	commentUC "shareit/internal/comment/usecase"
	"shareit/internal/item"
	itemHTTP "shareit/internal/item/delivery/http"
	itemRepo "shareit/internal/item/repository/postgre"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/itemview"
	itemviewHTTP "shareit/internal/itemview/delivery/http"
	itemviewUC "shareit/internal/itemview/usecase"
	"shareit/internal/middleware"
	"shareit/internal/request"
	requestHTTP "shareit/internal/request/delivery/http"
	requestRepo "shareit/internal/request/repository/postgre"
	requestUC "shareit/internal/request/usecase"
	"shareit/internal/user"
	userHTTP "shareit/internal/user/delivery/http"
	userRepo "shareit/internal/user/repository/postgre"
	userUC "shareit/internal/user/usecase"
	"shareit/pkg/postgres"
)

// domains holds the wired use cases. Leaves are built first since each
// domain depends on the ones before it.
type domains struct {
	user     user.UseCase
	item     item.UseCase
	request  request.UseCase
	booking  booking.UseCase
	comment  comment.UseCase
	itemview itemview.UseCase
}

func (srv HTTPServer) setupDomains() domains {
	tx := postgres.NewTransactor(srv.postgresDB)

	users := userUC.New(userRepo.New(srv.postgresDB, srv.l), srv.l)
	items := itemUC.New(itemRepo.New(srv.postgresDB, srv.l), users, srv.l)
	requests := requestUC.New(requestRepo.New(srv.postgresDB, srv.l), users, items, srv.l)
	bookings := bookingUC.New(bookingRepo.New(srv.postgresDB, srv.l), tx, users, items, srv.metrics, srv.l)
	comments := commentUC.New(commentRepo.New(srv.postgresDB, srv.l), users, items, bookings, srv.l)
	views := itemviewUC.New(items, bookings, comments, users, srv.l)

	return domains{
		user:     users,
		item:     items,
		request:  requests,
		booking:  bookings,
		comment:  comments,
		itemview: views,
	}
}

func (srv HTTPServer) registerUserRoutes(ctx context.Context, rg *gin.RouterGroup, d domains) {
	userHTTP.RegisterRoutes(rg, userHTTP.New(srv.l, d.user))
	srv.l.Infof(ctx, "User domain registered")
}

// registerItemRoutes maps the catalog writes, the aggregated views and
// comments, all under /items.
func (srv HTTPServer) registerItemRoutes(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, d domains) {
	itemHTTP.RegisterRoutes(rg, itemHTTP.New(srv.l, d.item), mw)
	itemviewHTTP.RegisterRoutes(rg, itemviewHTTP.New(srv.l, d.itemview), mw)
	commentHTTP.RegisterRoutes(rg, commentHTTP.New(srv.l, d.comment), mw)
	srv.l.Infof(ctx, "Item, item view and comment domains registered")
}

func (srv HTTPServer) registerBookingRoutes(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, d domains) {
	bookingHTTP.RegisterRoutes(rg, bookingHTTP.New(srv.l, d.booking), mw)
	srv.l.Infof(ctx, "Booking domain registered")
}

func (srv HTTPServer) registerRequestRoutes(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, d domains) {
	requestHTTP.RegisterRoutes(rg, requestHTTP.New(srv.l, d.request), mw)
	srv.l.Infof(ctx, "Request domain registered")
}
