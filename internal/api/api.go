package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/fishstats/internal/api/controller"
	"github.com/ougirez/fishstats/internal/config"
	"github.com/ougirez/fishstats/internal/pkg/store"
	"github.com/ougirez/fishstats/internal/service/explorer"
	"github.com/ougirez/fishstats/internal/service/landings"
	"github.com/ougirez/fishstats/internal/service/panorama"
)

type APIService struct {
	router *echo.Echo
	store  store.Store

	explorerService *explorer.Service
	landingsService *landings.Service
	panoramaService *panorama.Service
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(store store.Store, cfg *config.Config) (*APIService, error) {
	svc := &APIService{router: echo.New(), store: store}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(cfg.Log.Level))
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(svc.RequestIDMiddleware())
	svc.router.Use(svc.RequestLogMiddleware())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderXRequestID},
	}))

	svc.explorerService = explorer.NewExplorerService(store)
	svc.landingsService = landings.NewLandingsService(store, cfg.Analytics)
	svc.panoramaService = panorama.NewPanoramaService(store)

	cntrl := controller.NewController(store, svc.explorerService, svc.landingsService, svc.panoramaService)

	svc.router.GET("/health", cntrl.Health)

	api := svc.router.Group("/api/v1", svc.ReadinessMiddleware)

	general := api.Group("/general")
	general.GET("", cntrl.GetPanorama)
	general.GET("/supply-demand", cntrl.GetSupplyVsDemand)
	general.GET("/conversion-efficiency", cntrl.GetConversionEfficiency)
	general.GET("/plant-capacity", cntrl.GetPlantCapacity)
	general.GET("/regional-dynamics", cntrl.GetRegionalDynamics)
	general.GET("/longitudinal-evolution", cntrl.GetLongitudinalEvolution)

	explorador := api.Group("/explorador")
	explorador.GET("", cntrl.Explore)
	explorador.GET("/opciones-disponibles", cntrl.GetExplorerOptions)

	cosechas := api.Group("/cosechas")
	cosechas.GET("", cntrl.GetLandingSummary)
	cosechas.GET("/agent-distribution", cntrl.GetAgentDistribution)
	cosechas.GET("/agent-share", cntrl.GetAgentShare)
	cosechas.GET("/top-ports", cntrl.GetTopPorts)
	cosechas.GET("/species-breakdown", cntrl.GetSpeciesBreakdown)
	cosechas.GET("/seasonal-context", cntrl.GetSeasonalContext)

	data := api.Group("/data")
	data.GET("/stats", cntrl.GetDataStats)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "warn":
		return log.WARN
	default:
		return log.ERROR
	}
}
