package entities

import "time"

type ContentOwnership string

const (
	// OwnershipSystem marks platform-authored content. System content
	// carries no subscription and is read-only to subscribers.
	OwnershipSystem ContentOwnership = "system"
	// OwnershipUser marks content created and editable by exactly one
	// subscription.
	OwnershipUser ContentOwnership = "user"
	// OwnershipMarketplaceUser marks a copy acquired through a catalog
	// download. The owner may edit it, but it stays flagged as
	// catalog-derived.
	OwnershipMarketplaceUser ContentOwnership = "marketplace_user"
)

// OwnedBySubscription reports whether the ownership tag requires a
// concrete subscription id. The inverse holds for system content:
// system ownership and an empty subscription id always go together.
func (o ContentOwnership) OwnedBySubscription() bool {
	return o == OwnershipUser || o == OwnershipMarketplaceUser
}

type ExerciseParameter struct {
	ParameterID string
	Name        string
	Value       string
	Unit        string
}

type Exercise struct {
	ExerciseID     string
	SubscriptionID string
	Ownership      ContentOwnership
	Name           string
	Description    string
	Sport          string
	VideoURL       string
	Parameters     []ExerciseParameter
	CreatedByUser  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Technique struct {
	TechniqueID string
	Name        string
	Description string
	Order       int
}

type Objective struct {
	ObjectiveID    string
	SubscriptionID string
	Ownership      ContentOwnership
	Name           string
	Description    string
	Sport          string
	Level          string
	Techniques     []Technique
	CreatedByUser  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PlanObjective assigns an objective to a week of a training plan.
type PlanObjective struct {
	AssignmentID string
	ObjectiveID  string
	Week         int
	Notes        string
}

// WorkoutExercise assigns an exercise to a workout slot.
type WorkoutExercise struct {
	AssignmentID string
	ExerciseID   string
	Sets         int
	Reps         int
	RestSeconds  int
}

type PlanWorkout struct {
	WorkoutID string
	Name      string
	DayOfWeek int
	Exercises []WorkoutExercise
}

type TrainingPlan struct {
	PlanID         string
	SubscriptionID string
	Ownership      ContentOwnership
	Name           string
	Description    string
	Sport          string
	Objectives     []PlanObjective
	Workouts       []PlanWorkout
	CreatedByUser  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
