package controller

import (
	"github.com/ougirez/fishstats/internal/pkg/store"
	"github.com/ougirez/fishstats/internal/service/explorer"
	"github.com/ougirez/fishstats/internal/service/landings"
	"github.com/ougirez/fishstats/internal/service/panorama"
)

type Controller struct {
	store           store.Store
	explorerService *explorer.Service
	landingsService *landings.Service
	panoramaService *panorama.Service
}

func NewController(
	store store.Store,
	explorerService *explorer.Service,
	landingsService *landings.Service,
	panoramaService *panorama.Service,
) *Controller {
	return &Controller{
		store:           store,
		explorerService: explorerService,
		landingsService: landingsService,
		panoramaService: panoramaService,
	}
}
