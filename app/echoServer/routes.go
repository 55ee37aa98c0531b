package echoServer

import (
	balancectrl "librarydesk/app/echoServer/controller/balance"
	copyctrl "librarydesk/app/echoServer/controller/copy"
	reservationctrl "librarydesk/app/echoServer/controller/reservation"
	titlectrl "librarydesk/app/echoServer/controller/title"
	transactionctrl "librarydesk/app/echoServer/controller/transaction"
	userctrl "librarydesk/app/echoServer/controller/user"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Copy        *copyctrl.Controller
	Title       *titlectrl.Controller
	Reservation *reservationctrl.Controller
	Transaction *transactionctrl.Controller
	Balance     *balancectrl.Controller
	User        *userctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Everything below needs a verified bearer token; the session
	// object built from it is what crosses to the backend.
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup: "header:Authorization:Bearer ",
	}))

	// Copies / inventory
	auth.GET("/bookCopies", c.Copy.List)
	auth.GET("/bookCopies/:id", c.Copy.Detail)
	auth.POST("/bookCopies", c.Copy.Create)
	auth.PUT("/bookCopies/:id", c.Copy.Update)
	auth.DELETE("/bookCopies/:id", c.Copy.Delete)

	// Catalog
	auth.GET("/bookTitles", c.Title.List)
	auth.GET("/bookTitles/:id", c.Title.Detail)
	auth.GET("/bookTitles/:id/availableCopies", c.Title.AvailableCopies)

	// Reservations & fulfillment
	auth.GET("/reservations", c.Reservation.List)
	auth.GET("/reservations/my", c.Reservation.ListMine)
	auth.GET("/reservations/:id", c.Reservation.Detail)
	auth.GET("/reservations/user/:userId", c.Reservation.ListByUser)
	auth.GET("/reservations/bookCopy/:copyId", c.Reservation.ListByCopy)
	auth.POST("/reservations", c.Reservation.Create)
	auth.GET("/reservations/:id/availableCopies", c.Reservation.AvailableCopies)
	auth.POST("/reservations/:id/assign", c.Reservation.Assign)
	auth.POST("/reservations/:id/convert", c.Reservation.Convert)
	auth.DELETE("/reservations/:id", c.Reservation.Delete)

	// Transactions & returns
	auth.POST("/transactions", c.Transaction.Create)
	auth.GET("/transactions/pendingReturns", c.Transaction.PendingReturns)
	auth.GET("/transactions/bookCopy/:copyId", c.Transaction.ByCopy)
	auth.POST("/transactions/:id/approveReturn", c.Transaction.ApproveReturn)
	auth.GET("/transactions/:id/details", c.Transaction.Details)

	// Balance
	auth.GET("/balances", c.Balance.ListAll)
	auth.GET("/balances/my", c.Balance.ListMine)
	auth.GET("/balances/user/:userId", c.Balance.ListByUser)
	auth.GET("/balances/user/:userId/current", c.Balance.Current)
	auth.POST("/balances/deposit", c.Balance.Deposit)
	auth.POST("/balances/withdrawal", c.Balance.Withdraw)

	// Users
	auth.GET("/users/me", c.User.Me)
	auth.GET("/users", c.User.Search)
	auth.GET("/users/:id", c.User.Detail)
}
