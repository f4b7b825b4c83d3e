package container

import (
	"log/slog"
	"time"

	"github.com/joshua-takyi/eventhub/internal/config"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	EventStore    models.EventStore
	OrganizerRepo models.OrganizerRepo

	Catalog *services.EventCatalog
	Ranks   *services.RankEvaluator
}

// NewContainer creates a new dependency injection container. Stores are built
// by the caller so tests and the server can pick different backends.
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	events models.EventStore,
	organizers models.OrganizerRepo,
	loc *time.Location,
	opts ...services.CatalogOption,
) *Container {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	catalogOpts := []services.CatalogOption{
		services.WithCatalogLogger(logger),
		services.WithLocation(loc),
	}
	if cfg != nil && cfg.DefaultTimezone != "" {
		catalogOpts = append(catalogOpts, services.WithDefaultTimezone(cfg.DefaultTimezone))
	}
	catalogOpts = append(catalogOpts, opts...)

	return &Container{
		Config:        cfg,
		Logger:        logger,
		EventStore:    events,
		OrganizerRepo: organizers,
		Catalog:       services.NewEventCatalog(events, catalogOpts...),
		Ranks:         services.NewRankEvaluator(organizers, logger),
	}
}
