package cloneengine

import (
	"context"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	"playmaker/contexts/training-content/marketplace/ports"
)

type objectiveStrategy struct {
	objectives ports.ObjectiveRepository
	clock      ports.Clock
	ids        ports.IDGenerator
}

func (s objectiveStrategy) Snapshot(ctx context.Context, sourceID string) (Snapshot, error) {
	objective, err := s.objectives.GetObjective(ctx, sourceID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Name:           objective.Name,
		Description:    objective.Description,
		Sport:          objective.Sport,
		Ownership:      objective.Ownership,
		SubscriptionID: objective.SubscriptionID,
	}, nil
}

func (s objectiveStrategy) Clone(ctx context.Context, sourceID string, target Target) (string, error) {
	source, err := s.objectives.GetObjective(ctx, sourceID)
	if err != nil {
		return "", err
	}

	cloneID, err := s.ids.NewID(ctx)
	if err != nil {
		return "", err
	}
	now := resolveNow(s.clock)

	clone := entities.Objective{
		ObjectiveID:    cloneID,
		SubscriptionID: target.SubscriptionID,
		Ownership:      entities.OwnershipMarketplaceUser,
		Name:           source.Name,
		Description:    source.Description,
		Sport:          source.Sport,
		Level:          source.Level,
		Techniques:     make([]entities.Technique, 0, len(source.Techniques)),
		CreatedByUser:  target.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, technique := range source.Techniques {
		techniqueID, err := s.ids.NewID(ctx)
		if err != nil {
			return "", err
		}
		clone.Techniques = append(clone.Techniques, entities.Technique{
			TechniqueID: techniqueID,
			Name:        technique.Name,
			Description: technique.Description,
			Order:       technique.Order,
		})
	}

	if err := s.objectives.CreateObjective(ctx, clone); err != nil {
		return "", err
	}
	return cloneID, nil
}
