package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core/theme"
)

type themeApi struct {
	svc *theme.Service
}

func registerThemeAPI(g *echo.Group, svc *theme.Service) {
	api := themeApi{svc: svc}

	tg := g.Group("/theme")
	tg.GET("", api.retrieve)
	tg.PUT("", api.update)
	tg.POST("/toggle", api.toggle)
}

func (api *themeApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Get())
}

func (api *themeApi) update(ctx echo.Context) error {
	var data theme.Theme
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Theme")
	}
	th, err := api.svc.Set(ctx.Request().Context(), data.DarkMode)
	if err != nil {
		return errors.Wrap(err, "updating theme")
	}
	return ctx.JSON(http.StatusOK, th)
}

func (api *themeApi) toggle(ctx echo.Context) error {
	th, err := api.svc.Toggle(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "toggling theme")
	}
	return ctx.JSON(http.StatusOK, th)
}
