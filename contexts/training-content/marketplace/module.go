package marketplace

import (
	"log/slog"

	httpadapter "playmaker/contexts/training-content/marketplace/adapters/http"
	"playmaker/contexts/training-content/marketplace/adapters/memory"
	"playmaker/contexts/training-content/marketplace/application/cloneengine"
	"playmaker/contexts/training-content/marketplace/application/commands"
	"playmaker/contexts/training-content/marketplace/application/queries"
	"playmaker/contexts/training-content/marketplace/ports"
)

// Module is the composition surface for the marketplace context.
// Runtime wiring should consume Handler; Store is exposed for
// tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Catalog     ports.CatalogRepository
	Exercises   ports.ExerciseRepository
	Objectives  ports.ObjectiveRepository
	Plans       ports.TrainingPlanRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires the marketplace use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	engine := cloneengine.NewEngine(cloneengine.Dependencies{
		Exercises:   deps.Exercises,
		Objectives:  deps.Objectives,
		Plans:       deps.Plans,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
	})

	searchItems := queries.SearchItemsUseCase{
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	}
	getItem := queries.GetItemUseCase{
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	}
	listMyItems := queries.ListMyItemsUseCase{
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	}
	publishItem := commands.PublishItemUseCase{
		Catalog:     deps.Catalog,
		Content:     engine,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	downloadItem := commands.DownloadItemUseCase{
		Catalog: deps.Catalog,
		Content: engine,
		Clock:   deps.Clock,
		Logger:  deps.Logger,
	}
	rateItem := commands.RateItemUseCase{
		Catalog:     deps.Catalog,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}

	handler := httpadapter.Handler{
		SearchItems:  searchItems,
		GetItem:      getItem,
		ListMyItems:  listMyItems,
		PublishItem:  publishItem,
		DownloadItem: downloadItem,
		RateItem:     rateItem,
		Logger:       deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule wires the marketplace use cases against in-memory
// adapters, seeded with catalog and content state. This is the
// developer/test bootstrap path.
func NewInMemoryModule(seed memory.SeedData, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{
		Catalog:     store,
		Exercises:   store,
		Objectives:  store,
		Plans:       store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
