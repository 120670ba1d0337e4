package service

import (
	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/store"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
)

type Services struct {
	DummyService   DummyService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	catalogService := NewCatalogValidationService().
		Wrap(NewCatalogService(storages.ListingRepository, utils.NewUUIDGenerator(), logger))

	return &Services{
		DummyService:   NewDummyService(cfg.App, logger),
		CatalogService: catalogService,
		AppInfoService: appInfoService,
	}, nil
}
