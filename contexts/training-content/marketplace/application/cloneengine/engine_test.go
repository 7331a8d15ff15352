package cloneengine

import (
	"context"
	"errors"
	"testing"
	"time"

	"playmaker/contexts/training-content/marketplace/adapters/memory"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
)

func newTestEngine(seed memory.SeedData) (Engine, *memory.Store) {
	store := memory.NewStore(seed, nil)
	engine := NewEngine(Dependencies{
		Exercises:   store,
		Objectives:  store,
		Plans:       store,
		Clock:       store,
		IDGenerator: store,
	})
	return engine, store
}

func TestForTypeUnsupportedKind(t *testing.T) {
	engine, _ := newTestEngine(memory.SeedData{})

	_, err := engine.ForType(entities.MarketplaceItemType("playlist"))
	if !errors.Is(err, domainerrors.ErrUnsupportedKind) {
		t.Fatalf("expected unsupported kind, got %v", err)
	}
}

func TestCloneExerciseProducesIndependentCopy(t *testing.T) {
	source := entities.Exercise{
		ExerciseID:     "ex-1",
		SubscriptionID: "sub-a",
		Ownership:      entities.OwnershipUser,
		Name:           "Box Jumps",
		Description:    "Plyometric jump progression.",
		Sport:          "basketball",
		Parameters: []entities.ExerciseParameter{
			{ParameterID: "p-1", Name: "sets", Value: "3", Unit: "count"},
			{ParameterID: "p-2", Name: "reps", Value: "10", Unit: "count"},
		},
		CreatedAt: time.Now().Add(-time.Hour),
	}
	engine, store := newTestEngine(memory.SeedData{Exercises: []entities.Exercise{source}})

	strategy, err := engine.ForType(entities.ItemTypeExercise)
	if err != nil {
		t.Fatalf("strategy lookup failed: %v", err)
	}
	cloneID, err := strategy.Clone(context.Background(), "ex-1", Target{SubscriptionID: "sub-b", UserID: "user-b"})
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	if cloneID == source.ExerciseID {
		t.Fatal("clone must have a fresh id")
	}

	clone, err := store.GetExercise(context.Background(), cloneID)
	if err != nil {
		t.Fatalf("fetch clone failed: %v", err)
	}
	if clone.Ownership != entities.OwnershipMarketplaceUser {
		t.Fatalf("expected marketplace_user ownership, got %s", clone.Ownership)
	}
	if clone.SubscriptionID != "sub-b" {
		t.Fatalf("expected target subscription, got %s", clone.SubscriptionID)
	}
	if clone.CreatedByUser != "user-b" {
		t.Fatalf("expected acting user on audit field, got %s", clone.CreatedByUser)
	}
	if len(clone.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(clone.Parameters))
	}
	for i, parameter := range clone.Parameters {
		if parameter.ParameterID == source.Parameters[i].ParameterID {
			t.Fatalf("nested parameter %d kept the source id", i)
		}
		if parameter.Name != source.Parameters[i].Name {
			t.Fatalf("nested parameter %d lost its content", i)
		}
	}

	// Mutating the clone must never reach the source.
	clone.Parameters[0].Value = "99"
	original, err := store.GetExercise(context.Background(), "ex-1")
	if err != nil {
		t.Fatalf("fetch source failed: %v", err)
	}
	if original.Parameters[0].Value != "3" {
		t.Fatalf("source mutated through clone: %s", original.Parameters[0].Value)
	}
}

func TestCloneObjectiveDeepCopiesTechniques(t *testing.T) {
	source := entities.Objective{
		ObjectiveID:    "obj-1",
		SubscriptionID: "sub-a",
		Ownership:      entities.OwnershipUser,
		Name:           "Zone Defense",
		Sport:          "basketball",
		Techniques: []entities.Technique{
			{TechniqueID: "t-1", Name: "2-3 rotation", Order: 1},
			{TechniqueID: "t-2", Name: "Closeout", Order: 2},
		},
	}
	engine, store := newTestEngine(memory.SeedData{Objectives: []entities.Objective{source}})

	strategy, err := engine.ForType(entities.ItemTypeObjective)
	if err != nil {
		t.Fatalf("strategy lookup failed: %v", err)
	}
	cloneID, err := strategy.Clone(context.Background(), "obj-1", Target{SubscriptionID: "sub-b", UserID: "user-b"})
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}

	clone, err := store.GetObjective(context.Background(), cloneID)
	if err != nil {
		t.Fatalf("fetch clone failed: %v", err)
	}
	if clone.Ownership != entities.OwnershipMarketplaceUser {
		t.Fatalf("expected marketplace_user ownership, got %s", clone.Ownership)
	}
	if len(clone.Techniques) != 2 {
		t.Fatalf("expected 2 techniques, got %d", len(clone.Techniques))
	}
	for i, technique := range clone.Techniques {
		if technique.TechniqueID == source.Techniques[i].TechniqueID {
			t.Fatalf("technique %d kept the source id", i)
		}
		if technique.Order != source.Techniques[i].Order {
			t.Fatalf("technique %d lost its order", i)
		}
	}
}

func TestCloneTrainingPlanDropsUnresolvableReferences(t *testing.T) {
	systemObjective := entities.Objective{
		ObjectiveID: "obj-system",
		Ownership:   entities.OwnershipSystem,
		Name:        "Conditioning Base",
		Sport:       "basketball",
	}
	// Owned by the publisher, invisible to the downloader.
	foreignObjective := entities.Objective{
		ObjectiveID:    "obj-foreign",
		SubscriptionID: "sub-a",
		Ownership:      entities.OwnershipUser,
		Name:           "Private Objective",
		Sport:          "basketball",
	}
	targetExercise := entities.Exercise{
		ExerciseID:     "ex-target",
		SubscriptionID: "sub-b",
		Ownership:      entities.OwnershipUser,
		Name:           "Own Drill",
		Sport:          "basketball",
	}
	foreignExercise := entities.Exercise{
		ExerciseID:     "ex-foreign",
		SubscriptionID: "sub-a",
		Ownership:      entities.OwnershipUser,
		Name:           "Private Drill",
		Sport:          "basketball",
	}
	plan := entities.TrainingPlan{
		PlanID:         "plan-1",
		SubscriptionID: "sub-a",
		Ownership:      entities.OwnershipUser,
		Name:           "Preseason Block",
		Sport:          "basketball",
		Objectives: []entities.PlanObjective{
			{AssignmentID: "po-1", ObjectiveID: "obj-system", Week: 1},
			{AssignmentID: "po-2", ObjectiveID: "obj-foreign", Week: 2},
			{AssignmentID: "po-3", ObjectiveID: "obj-deleted", Week: 3},
		},
		Workouts: []entities.PlanWorkout{
			{
				WorkoutID: "w-1",
				Name:      "Monday",
				DayOfWeek: 1,
				Exercises: []entities.WorkoutExercise{
					{AssignmentID: "we-1", ExerciseID: "ex-target", Sets: 3, Reps: 10},
					{AssignmentID: "we-2", ExerciseID: "ex-foreign", Sets: 4, Reps: 8},
				},
			},
		},
	}
	engine, store := newTestEngine(memory.SeedData{
		Objectives: []entities.Objective{systemObjective, foreignObjective},
		Exercises:  []entities.Exercise{targetExercise, foreignExercise},
		Plans:      []entities.TrainingPlan{plan},
	})

	strategy, err := engine.ForType(entities.ItemTypeTrainingPlan)
	if err != nil {
		t.Fatalf("strategy lookup failed: %v", err)
	}
	cloneID, err := strategy.Clone(context.Background(), "plan-1", Target{SubscriptionID: "sub-b", UserID: "user-b"})
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}

	clone, err := store.GetTrainingPlan(context.Background(), cloneID)
	if err != nil {
		t.Fatalf("fetch clone failed: %v", err)
	}
	if clone.Ownership != entities.OwnershipMarketplaceUser {
		t.Fatalf("expected marketplace_user ownership, got %s", clone.Ownership)
	}
	// Only the system objective survives: the foreign one belongs to
	// another subscription and the third no longer exists.
	if len(clone.Objectives) != 1 {
		t.Fatalf("expected 1 objective assignment, got %d", len(clone.Objectives))
	}
	if clone.Objectives[0].ObjectiveID != "obj-system" {
		t.Fatalf("wrong surviving objective: %s", clone.Objectives[0].ObjectiveID)
	}
	if clone.Objectives[0].AssignmentID == "po-1" {
		t.Fatal("assignment kept the source id")
	}
	if len(clone.Workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(clone.Workouts))
	}
	workout := clone.Workouts[0]
	if workout.WorkoutID == "w-1" {
		t.Fatal("workout kept the source id")
	}
	if len(workout.Exercises) != 1 {
		t.Fatalf("expected 1 surviving exercise slot, got %d", len(workout.Exercises))
	}
	if workout.Exercises[0].ExerciseID != "ex-target" {
		t.Fatalf("wrong surviving exercise: %s", workout.Exercises[0].ExerciseID)
	}

	// Source plan is untouched.
	original, err := store.GetTrainingPlan(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("fetch source failed: %v", err)
	}
	if len(original.Objectives) != 3 || len(original.Workouts[0].Exercises) != 2 {
		t.Fatal("source plan mutated by clone")
	}
}

func TestCloneMissingSource(t *testing.T) {
	engine, _ := newTestEngine(memory.SeedData{})

	strategy, err := engine.ForType(entities.ItemTypeExercise)
	if err != nil {
		t.Fatalf("strategy lookup failed: %v", err)
	}
	_, err = strategy.Clone(context.Background(), "ex-missing", Target{SubscriptionID: "sub-b"})
	if !errors.Is(err, domainerrors.ErrContentNotFound) {
		t.Fatalf("expected content not found, got %v", err)
	}
}
