package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/logger"
)

type dummyService struct {
	name string

	logger *logger.Logger
}

func NewDummyService(cfg config.App, logger *logger.Logger) DummyService {
	return &dummyService{
		name:   cfg.Name,
		logger: logger,
	}
}

// Serve returns a fixed greeting naming the service.
func (s *dummyService) Serve(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("service", s.name).Msg("dummy service called")
	return fmt.Sprintf("Hello from %s dummy service", s.name)
}
