package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jnedu/classroom2030/core/class"
)

type classApi struct {
	svc *class.Service
}

func registerClassAPI(g *echo.Group, svc *class.Service) {
	api := classApi{svc: svc}

	cg := g.Group("/classes")
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
}

// Handlers

func (api *classApi) query(ctx echo.Context) error {
	var filter class.Filter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to class.Filter")
	}

	classes, err := api.svc.Find(ctx.Request().Context(), filter, time.Now())
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	cls, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"), time.Now())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}
