package cloneengine

import (
	"context"
	"time"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

// Snapshot carries the kind-independent source fields the publish
// workflow snapshots into a catalog entry.
type Snapshot struct {
	Name           string
	Description    string
	Sport          string
	Ownership      entities.ContentOwnership
	SubscriptionID string
}

// Target identifies the subscription acquiring a clone and the acting
// user recorded on the clone's audit fields.
type Target struct {
	SubscriptionID string
	UserID         string
}

// Strategy bundles fetch and clone-with-persist for one content kind.
// Clone must produce a structurally independent copy: fresh identity
// for the entity and every nested element, marketplace_user ownership,
// and no slices shared with the source.
type Strategy interface {
	Snapshot(ctx context.Context, sourceID string) (Snapshot, error)
	Clone(ctx context.Context, sourceID string, target Target) (string, error)
}

// Engine dispatches to the registered per-kind strategy.
type Engine struct {
	strategies map[entities.MarketplaceItemType]Strategy
	clock      ports.Clock
}

type Dependencies struct {
	Exercises   ports.ExerciseRepository
	Objectives  ports.ObjectiveRepository
	Plans       ports.TrainingPlanRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
}

// NewEngine registers one strategy per content kind.
func NewEngine(deps Dependencies) Engine {
	return Engine{
		strategies: map[entities.MarketplaceItemType]Strategy{
			entities.ItemTypeExercise: exerciseStrategy{
				exercises: deps.Exercises,
				clock:     deps.Clock,
				ids:       deps.IDGenerator,
			},
			entities.ItemTypeObjective: objectiveStrategy{
				objectives: deps.Objectives,
				clock:      deps.Clock,
				ids:        deps.IDGenerator,
			},
			entities.ItemTypeTrainingPlan: trainingPlanStrategy{
				plans:      deps.Plans,
				objectives: deps.Objectives,
				exercises:  deps.Exercises,
				clock:      deps.Clock,
				ids:        deps.IDGenerator,
			},
		},
		clock: deps.Clock,
	}
}

// ForType resolves the strategy for a content kind. An unregistered
// kind is a programming error, not a user-recoverable condition.
func (e Engine) ForType(itemType entities.MarketplaceItemType) (Strategy, error) {
	strategy, ok := e.strategies[itemType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedKind
	}
	return strategy, nil
}

func resolveNow(clock ports.Clock) time.Time {
	if clock != nil {
		return clock.Now().UTC()
	}
	return time.Now().UTC()
}
