// Package main library desk API.
//
// @title           Library Desk API
// @version         1.0
// @description     Staff-desk facade over the library backend: copies,
// @description     reservations, borrow/return transactions, balances.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"os"

	"librarydesk/app/echoServer"
	balancectrl "librarydesk/app/echoServer/controller/balance"
	copyctrl "librarydesk/app/echoServer/controller/copy"
	reservationctrl "librarydesk/app/echoServer/controller/reservation"
	titlectrl "librarydesk/app/echoServer/controller/title"
	transactionctrl "librarydesk/app/echoServer/controller/transaction"
	userctrl "librarydesk/app/echoServer/controller/user"
	"librarydesk/app/echoServer/validation"
	"librarydesk/config"
	"librarydesk/model"
	balancerepo "librarydesk/repository/balance"
	copyrepo "librarydesk/repository/copy"
	"librarydesk/repository/remote"
	reservationrepo "librarydesk/repository/reservation"
	titlerepo "librarydesk/repository/title"
	transactionrepo "librarydesk/repository/transaction"
	userrepo "librarydesk/repository/user"
	balancesvc "librarydesk/service/balance"
	copysvc "librarydesk/service/copy"
	"librarydesk/service/fulfillment"
	"librarydesk/service/inventory"
	"librarydesk/service/returns"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// remote access layer: one client, per-entity repos
	rc := remote.New(cfg.BackendBaseURL)
	cr := copyrepo.NewHTTP(rc)
	rr := reservationrepo.NewHTTP(rc)
	tr := transactionrepo.NewHTTP(rc)
	br := balancerepo.NewHTTP(rc)
	ur := userrepo.NewHTTP(rc)
	tlr := titlerepo.NewHTTP(rc)

	// services
	cs := copysvc.New(cr)
	is := inventory.New(cr)
	fs := fulfillment.New(cr, rr, tr, cfg.BorrowDays)
	rs := returns.New(tr, cr, model.CopyStatus(cfg.ReturnTarget))
	bs := balancesvc.New(br)

	// controllers
	v := validator.New()
	copyC := &copyctrl.Controller{Svc: cs, Inv: is, V: v, Log: log}
	titleC := &titlectrl.Controller{Repo: tlr, Flow: fs, Log: log}
	reservationC := &reservationctrl.Controller{Repo: rr, Flow: fs, V: v, Log: log}
	transactionC := &transactionctrl.Controller{Flow: fs, Returns: rs, V: v, Log: log}
	balanceC := &balancectrl.Controller{Svc: bs, V: v, Log: log}
	userC := &userctrl.Controller{Repo: ur, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"backend": cfg.BackendBaseURL,
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Copy:        copyC,
		Title:       titleC,
		Reservation: reservationC,
		Transaction: transactionC,
		Balance:     balanceC,
		User:        userC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
