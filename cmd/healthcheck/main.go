package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/utils"
)

const checkTimeout = 5 * time.Second

// healthcheck checks /health and /ready of the server configured by the
// same env, flags and JSON file as cmd/server. It exits non-zero when
// either check fails, for use as a container health check.
func main() {
	log := logger.NewLogger("healthcheck")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	client := utils.NewHTTPClient(baseURL(cfg.Server.HTTPAddress), checkTimeout)
	correlationID := "healthcheck-" + utils.NewUUIDGenerator().Generate()

	if err = client.CheckHealth(ctx, correlationID, "/health", "/ready"); err != nil {
		log.Error().Err(err).Str("correlation_id", correlationID).Msg("server is unhealthy")
		cancel()
		os.Exit(1)
	}

	log.Info().Str("correlation_id", correlationID).Msg("server is healthy")
}

// baseURL turns a listen address into a URL reachable from the same host.
func baseURL(address string) string {
	host, port, found := strings.Cut(address, ":")
	if !found {
		return "http://" + address
	}
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return "http://" + host + ":" + port
}
