package cloneengine

import (
	"context"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	"playmaker/contexts/training-content/marketplace/ports"
)

type exerciseStrategy struct {
	exercises ports.ExerciseRepository
	clock     ports.Clock
	ids       ports.IDGenerator
}

func (s exerciseStrategy) Snapshot(ctx context.Context, sourceID string) (Snapshot, error) {
	exercise, err := s.exercises.GetExercise(ctx, sourceID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Name:           exercise.Name,
		Description:    exercise.Description,
		Sport:          exercise.Sport,
		Ownership:      exercise.Ownership,
		SubscriptionID: exercise.SubscriptionID,
	}, nil
}

func (s exerciseStrategy) Clone(ctx context.Context, sourceID string, target Target) (string, error) {
	source, err := s.exercises.GetExercise(ctx, sourceID)
	if err != nil {
		return "", err
	}

	cloneID, err := s.ids.NewID(ctx)
	if err != nil {
		return "", err
	}
	now := resolveNow(s.clock)

	clone := entities.Exercise{
		ExerciseID:     cloneID,
		SubscriptionID: target.SubscriptionID,
		Ownership:      entities.OwnershipMarketplaceUser,
		Name:           source.Name,
		Description:    source.Description,
		Sport:          source.Sport,
		VideoURL:       source.VideoURL,
		Parameters:     make([]entities.ExerciseParameter, 0, len(source.Parameters)),
		CreatedByUser:  target.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, parameter := range source.Parameters {
		parameterID, err := s.ids.NewID(ctx)
		if err != nil {
			return "", err
		}
		clone.Parameters = append(clone.Parameters, entities.ExerciseParameter{
			ParameterID: parameterID,
			Name:        parameter.Name,
			Value:       parameter.Value,
			Unit:        parameter.Unit,
		})
	}

	if err := s.exercises.CreateExercise(ctx, clone); err != nil {
		return "", err
	}
	return cloneID, nil
}
