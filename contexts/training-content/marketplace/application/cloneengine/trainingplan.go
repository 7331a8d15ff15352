package cloneengine

import (
	"context"
	"errors"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

type trainingPlanStrategy struct {
	plans      ports.TrainingPlanRepository
	objectives ports.ObjectiveRepository
	exercises  ports.ExerciseRepository
	clock      ports.Clock
	ids        ports.IDGenerator
}

func (s trainingPlanStrategy) Snapshot(ctx context.Context, sourceID string) (Snapshot, error) {
	plan, err := s.plans.GetTrainingPlan(ctx, sourceID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Name:           plan.Name,
		Description:    plan.Description,
		Sport:          plan.Sport,
		Ownership:      plan.Ownership,
		SubscriptionID: plan.SubscriptionID,
	}, nil
}

// Clone deep-copies a plan for the target subscription. Objective and
// exercise assignments survive only when the referenced entity is
// visible to the target (system-owned or owned by the target);
// unresolved references are dropped so the clone never points at
// content the target cannot see.
func (s trainingPlanStrategy) Clone(ctx context.Context, sourceID string, target Target) (string, error) {
	source, err := s.plans.GetTrainingPlan(ctx, sourceID)
	if err != nil {
		return "", err
	}

	cloneID, err := s.ids.NewID(ctx)
	if err != nil {
		return "", err
	}
	now := resolveNow(s.clock)

	clone := entities.TrainingPlan{
		PlanID:         cloneID,
		SubscriptionID: target.SubscriptionID,
		Ownership:      entities.OwnershipMarketplaceUser,
		Name:           source.Name,
		Description:    source.Description,
		Sport:          source.Sport,
		Objectives:     make([]entities.PlanObjective, 0, len(source.Objectives)),
		Workouts:       make([]entities.PlanWorkout, 0, len(source.Workouts)),
		CreatedByUser:  target.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for _, assignment := range source.Objectives {
		visible, err := s.objectiveVisible(ctx, assignment.ObjectiveID, target.SubscriptionID)
		if err != nil {
			return "", err
		}
		if !visible {
			continue
		}
		assignmentID, err := s.ids.NewID(ctx)
		if err != nil {
			return "", err
		}
		clone.Objectives = append(clone.Objectives, entities.PlanObjective{
			AssignmentID: assignmentID,
			ObjectiveID:  assignment.ObjectiveID,
			Week:         assignment.Week,
			Notes:        assignment.Notes,
		})
	}

	for _, workout := range source.Workouts {
		workoutID, err := s.ids.NewID(ctx)
		if err != nil {
			return "", err
		}
		workoutClone := entities.PlanWorkout{
			WorkoutID: workoutID,
			Name:      workout.Name,
			DayOfWeek: workout.DayOfWeek,
			Exercises: make([]entities.WorkoutExercise, 0, len(workout.Exercises)),
		}
		for _, slot := range workout.Exercises {
			visible, err := s.exerciseVisible(ctx, slot.ExerciseID, target.SubscriptionID)
			if err != nil {
				return "", err
			}
			if !visible {
				continue
			}
			slotID, err := s.ids.NewID(ctx)
			if err != nil {
				return "", err
			}
			workoutClone.Exercises = append(workoutClone.Exercises, entities.WorkoutExercise{
				AssignmentID: slotID,
				ExerciseID:   slot.ExerciseID,
				Sets:         slot.Sets,
				Reps:         slot.Reps,
				RestSeconds:  slot.RestSeconds,
			})
		}
		clone.Workouts = append(clone.Workouts, workoutClone)
	}

	if err := s.plans.CreateTrainingPlan(ctx, clone); err != nil {
		return "", err
	}
	return cloneID, nil
}

func (s trainingPlanStrategy) objectiveVisible(ctx context.Context, objectiveID string, subscriptionID string) (bool, error) {
	objective, err := s.objectives.GetObjective(ctx, objectiveID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrContentNotFound) {
			return false, nil
		}
		return false, err
	}
	return contentVisible(objective.Ownership, objective.SubscriptionID, subscriptionID), nil
}

func (s trainingPlanStrategy) exerciseVisible(ctx context.Context, exerciseID string, subscriptionID string) (bool, error) {
	exercise, err := s.exercises.GetExercise(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrContentNotFound) {
			return false, nil
		}
		return false, err
	}
	return contentVisible(exercise.Ownership, exercise.SubscriptionID, subscriptionID), nil
}

func contentVisible(ownership entities.ContentOwnership, ownerID string, subscriptionID string) bool {
	if ownership == entities.OwnershipSystem {
		return true
	}
	return ownerID == subscriptionID
}
