package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/domain/dto"
)

func (c *Controller) Explore(ctx echo.Context) error {
	var req dto.ExplorerRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res, err := c.explorerService.Query(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetExplorerOptions(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.ExplorerOptionsResponse{
		Success: true,
		Options: c.explorerService.Options(ctx.Request().Context()),
	})
}
