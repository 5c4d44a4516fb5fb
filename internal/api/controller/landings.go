package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/fishstats/internal/domain/dto"
	"github.com/ougirez/fishstats/internal/service/landings"
)

func (c *Controller) GetLandingSummary(ctx echo.Context) error {
	var req dto.LandingSummaryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.landingsService.Summary(ctx.Request().Context(), req))
}

func (c *Controller) GetAgentDistribution(ctx echo.Context) error {
	var req dto.AgentDistributionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	scope := landings.Scope{Year: req.Year, Region: req.Region}
	return ctx.JSON(http.StatusOK, c.landingsService.AgentDistribution(ctx.Request().Context(), scope))
}

func (c *Controller) GetAgentShare(ctx echo.Context) error {
	var req dto.AgentDistributionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	scope := landings.Scope{Year: req.Year, Region: req.Region}
	return ctx.JSON(http.StatusOK, c.landingsService.AgentShare(ctx.Request().Context(), scope))
}

func (c *Controller) GetTopPorts(ctx echo.Context) error {
	var req dto.TopNRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	scope := landings.Scope{Year: req.Year, Region: req.Region}
	return ctx.JSON(http.StatusOK, c.landingsService.TopPorts(ctx.Request().Context(), scope, req.TopN))
}

func (c *Controller) GetSpeciesBreakdown(ctx echo.Context) error {
	var req dto.TopNRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	scope := landings.Scope{Year: req.Year, Region: req.Region}
	return ctx.JSON(http.StatusOK, c.landingsService.SpeciesBreakdown(ctx.Request().Context(), scope, req.TopN))
}

func (c *Controller) GetSeasonalContext(ctx echo.Context) error {
	var req dto.SeasonalRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.landingsService.SeasonalContext(ctx.Request().Context(), req.CurrentYear, req.Region))
}
