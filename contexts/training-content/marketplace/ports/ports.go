package ports

import (
	"context"
	"time"

	"playmaker/contexts/training-content/marketplace/domain/entities"
)

// ItemSearchFilter defines read-side filtering/pagination for the
// catalog. Type is optional (empty means any kind); Page is 1-based.
type ItemSearchFilter struct {
	Sport      string
	Type       entities.MarketplaceItemType
	Filter     entities.MarketplaceFilter
	SearchTerm string
	Page       int
	PageSize   int
}

// CatalogRepository owns marketplace item persistence, including the
// concurrency-sensitive aggregate writes.
type CatalogRepository interface {
	SearchItems(ctx context.Context, filter ItemSearchFilter) ([]entities.MarketplaceItem, error)
	// CountItems applies the same predicate as SearchItems without
	// pagination so callers can compute exact total pages.
	CountItems(ctx context.Context, filter ItemSearchFilter) (int, error)
	GetItem(ctx context.Context, itemID string) (entities.MarketplaceItem, error)
	ListItemsBySubscription(ctx context.Context, subscriptionID string) ([]entities.MarketplaceItem, error)
	CreateItem(ctx context.Context, item entities.MarketplaceItem) error
	// IncrementDownloads must apply the +1 as a single atomic unit
	// relative to the item so concurrent downloads never lose a count.
	IncrementDownloads(ctx context.Context, itemID string, now time.Time) error
	// UpsertRating must atomically insert-or-update the rater's rating
	// and recompute TotalRatings/AverageRating, returning the applied
	// aggregates.
	UpsertRating(ctx context.Context, itemID string, rating entities.Rating) (entities.MarketplaceItem, error)
}

// ExerciseRepository is the exercise content store consumed by the
// clone engine.
type ExerciseRepository interface {
	GetExercise(ctx context.Context, exerciseID string) (entities.Exercise, error)
	CreateExercise(ctx context.Context, exercise entities.Exercise) error
}

type ObjectiveRepository interface {
	GetObjective(ctx context.Context, objectiveID string) (entities.Objective, error)
	CreateObjective(ctx context.Context, objective entities.Objective) error
}

type TrainingPlanRepository interface {
	GetTrainingPlan(ctx context.Context, planID string) (entities.TrainingPlan, error)
	CreateTrainingPlan(ctx context.Context, plan entities.TrainingPlan) error
}

// Clock allows deterministic testing of timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts item/clone identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
