package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/fishstats/internal/domain/dto"
)

func (c *Controller) GetPanorama(ctx echo.Context) error {
	var req dto.RegionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.panoramaService.Panorama(ctx.Request().Context(), req.Region))
}

func (c *Controller) GetSupplyVsDemand(ctx echo.Context) error {
	var req dto.SupplyDemandRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res := c.panoramaService.SupplyVsDemand(ctx.Request().Context(), req.StartYear, req.EndYear, req.Region)
	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetConversionEfficiency(ctx echo.Context) error {
	var req dto.ConversionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res := c.panoramaService.ConversionEfficiency(ctx.Request().Context(), req.TopN, req.MinRawTons)
	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetPlantCapacity(ctx echo.Context) error {
	var req dto.RegionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.panoramaService.PlantCapacity(ctx.Request().Context(), req.Region))
}

func (c *Controller) GetRegionalDynamics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.panoramaService.RegionalDynamics(ctx.Request().Context()))
}

func (c *Controller) GetLongitudinalEvolution(ctx echo.Context) error {
	var req dto.RegionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.panoramaService.LongitudinalEvolution(ctx.Request().Context(), req.Region))
}
