package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/fishstats/internal/domain"
)

func (c *Controller) GetDataStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.StatsResponse{Success: true, Stats: c.store.Stats()})
}

// Health always answers 200; Ready tells whether the datasets are being served yet.
func (c *Controller) Health(ctx echo.Context) error {
	stats := c.store.Stats()

	res := domain.HealthResponse{
		Status:  "ok",
		Ready:   c.store.Ready(),
		Message: "datasets loaded",
		Data: map[string]int{
			"desembarques":           stats.Landings.Count,
			"materiaPrimaProduccion": stats.Production.Count,
			"plantas":                stats.Plants.Count,
		},
	}
	if !res.Ready {
		res.Message = "datasets are still loading"
	}

	return ctx.JSON(http.StatusOK, res)
}
