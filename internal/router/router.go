package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Search(c *ginext.Context)
	GetOffering(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	Quote(c *ginext.Context)

	CreateHold(c *ginext.Context)
	GetHold(c *ginext.Context)
	ConfirmHold(c *ginext.Context)
	ExpireHolds(c *ginext.Context)

	GetReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	AddReservationLine(c *ginext.Context)
	RemoveReservationLine(c *ginext.Context)

	ListPayments(c *ginext.Context)
	Pay(c *ginext.Context)
	CapturePayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)
	DeletePayment(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.POST("/search", h.Search)
		api.GET("/offerings/:provider/:id", h.GetOffering)
		api.POST("/offerings/:provider/:id/availability", h.CheckAvailability)
		api.POST("/offerings/:provider/quote", h.Quote)

		// Holds
		api.POST("/holds", h.CreateHold)
		api.POST("/holds/expire", h.ExpireHolds)
		api.GET("/holds/:id", h.GetHold)
		api.POST("/holds/:id/confirm", h.ConfirmHold)

		// Reservations
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/lines", h.AddReservationLine)
		api.DELETE("/reservations/:id/lines/:line_id", h.RemoveReservationLine)
		api.GET("/reservations/:id/payments", h.ListPayments)
		api.POST("/reservations/:id/payments", h.Pay)

		// Payments
		api.POST("/payments/:id/capture", h.CapturePayment)
		api.POST("/payments/:id/refund", h.RefundPayment)
		api.DELETE("/payments/:id", h.DeletePayment)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PATCH("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
