package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	marketplace "playmaker/contexts/training-content/marketplace"
	"playmaker/contexts/training-content/marketplace/adapters/memory"
	postgresadapter "playmaker/contexts/training-content/marketplace/adapters/postgres"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	"playmaker/internal/platform/config"
	"playmaker/internal/platform/db"
	"playmaker/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var module marketplace.Module
	var pg *db.Postgres

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)
		module = marketplace.NewModule(marketplace.Dependencies{
			Catalog:     repo,
			Exercises:   repo,
			Objectives:  repo,
			Plans:       repo,
			Clock:       postgresadapter.SystemClock{},
			IDGenerator: postgresadapter.UUIDGenerator{},
			Logger:      logger,
		})
	} else {
		seed := memory.SeedData{}
		if cfg.SeedDemoData {
			seed = demoSeed()
		}
		module = marketplace.NewInMemoryModule(seed, logger)
	}

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// demoSeed provides platform-authored content plus official catalog
// entries so a dev process starts with a browsable marketplace.
func demoSeed() memory.SeedData {
	seededAt := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

	exercise := entities.Exercise{
		ExerciseID:  "ex-suicide-sprints",
		Ownership:   entities.OwnershipSystem,
		Name:        "Suicide Sprints",
		Description: "Baseline-to-line shuttle sprint ladder.",
		Sport:       "basketball",
		Parameters: []entities.ExerciseParameter{
			{ParameterID: "exp-sets", Name: "sets", Value: "4", Unit: "count"},
			{ParameterID: "exp-rest", Name: "rest", Value: "60", Unit: "seconds"},
		},
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	}
	objective := entities.Objective{
		ObjectiveID: "obj-pick-and-roll",
		Ownership:   entities.OwnershipSystem,
		Name:        "Pick and Roll Fundamentals",
		Description: "Screening angles, timing and the roll read.",
		Sport:       "basketball",
		Level:       "intermediate",
		Techniques: []entities.Technique{
			{TechniqueID: "tec-screen-angle", Name: "Screen angle", Order: 1},
			{TechniqueID: "tec-roll-read", Name: "Roll read", Order: 2},
		},
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	}

	return memory.SeedData{
		Exercises:  []entities.Exercise{exercise},
		Objectives: []entities.Objective{objective},
		Items: []entities.MarketplaceItem{
			{
				ItemID:            "itm-official-sprints",
				Type:              entities.ItemTypeExercise,
				Sport:             "basketball",
				SourceEntityID:    exercise.ExerciseID,
				PublishedByUserID: "playmaker-editorial",
				PublishedAt:       seededAt,
				Name:              exercise.Name,
				Description:       exercise.Description,
				IsSystemOfficial:  true,
				UpdatedAt:         seededAt,
			},
			{
				ItemID:            "itm-official-pnr",
				Type:              entities.ItemTypeObjective,
				Sport:             "basketball",
				SourceEntityID:    objective.ObjectiveID,
				PublishedByUserID: "playmaker-editorial",
				PublishedAt:       seededAt,
				Name:              objective.Name,
				Description:       objective.Description,
				IsSystemOfficial:  true,
				UpdatedAt:         seededAt,
			},
		},
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
