package postgresadapter

import (
	"time"

	"playmaker/contexts/training-content/marketplace/domain/entities"
)

type itemModel struct {
	ItemID                    string    `gorm:"column:item_id;primaryKey"`
	ItemType                  string    `gorm:"column:item_type"`
	Sport                     string    `gorm:"column:sport"`
	SourceEntityID            string    `gorm:"column:source_entity_id"`
	PublishedBySubscriptionID string    `gorm:"column:published_by_subscription_id"`
	PublishedByUserID         string    `gorm:"column:published_by_user_id"`
	PublishedAt               time.Time `gorm:"column:published_at"`
	Name                      string    `gorm:"column:name"`
	Description               string    `gorm:"column:description"`
	IsSystemOfficial          bool      `gorm:"column:is_system_official"`
	TotalDownloads            int       `gorm:"column:total_downloads"`
	AverageRating             float64   `gorm:"column:average_rating"`
	TotalRatings              int       `gorm:"column:total_ratings"`
	UpdatedAt                 time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string {
	return "marketplace_items"
}

func itemModelFromEntity(item entities.MarketplaceItem) itemModel {
	return itemModel{
		ItemID:                    item.ItemID,
		ItemType:                  string(item.Type),
		Sport:                     item.Sport,
		SourceEntityID:            item.SourceEntityID,
		PublishedBySubscriptionID: item.PublishedBySubscriptionID,
		PublishedByUserID:         item.PublishedByUserID,
		PublishedAt:               item.PublishedAt.UTC(),
		Name:                      item.Name,
		Description:               item.Description,
		IsSystemOfficial:          item.IsSystemOfficial,
		TotalDownloads:            item.TotalDownloads,
		AverageRating:             item.AverageRating,
		TotalRatings:              item.TotalRatings,
		UpdatedAt:                 item.UpdatedAt.UTC(),
	}
}

func (m itemModel) toEntity(ratingRows []ratingModel) entities.MarketplaceItem {
	var ratings []entities.Rating
	for _, row := range ratingRows {
		ratings = append(ratings, row.toEntity())
	}
	return entities.MarketplaceItem{
		ItemID:                    m.ItemID,
		Type:                      entities.MarketplaceItemType(m.ItemType),
		Sport:                     m.Sport,
		SourceEntityID:            m.SourceEntityID,
		PublishedBySubscriptionID: m.PublishedBySubscriptionID,
		PublishedByUserID:         m.PublishedByUserID,
		PublishedAt:               m.PublishedAt.UTC(),
		Name:                      m.Name,
		Description:               m.Description,
		IsSystemOfficial:          m.IsSystemOfficial,
		TotalDownloads:            m.TotalDownloads,
		Ratings:                   ratings,
		AverageRating:             m.AverageRating,
		TotalRatings:              m.TotalRatings,
		UpdatedAt:                 m.UpdatedAt.UTC(),
	}
}

type ratingModel struct {
	RatingID            string    `gorm:"column:rating_id;primaryKey"`
	ItemID              string    `gorm:"column:item_id"`
	RaterSubscriptionID string    `gorm:"column:rater_subscription_id"`
	Stars               int       `gorm:"column:stars"`
	Comment             string    `gorm:"column:comment"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (ratingModel) TableName() string {
	return "marketplace_ratings"
}

func ratingModelFromEntity(rating entities.Rating) ratingModel {
	return ratingModel{
		RatingID:            rating.RatingID,
		ItemID:              rating.ItemID,
		RaterSubscriptionID: rating.RaterSubscriptionID,
		Stars:               rating.Stars,
		Comment:             rating.Comment,
		CreatedAt:           rating.CreatedAt.UTC(),
		UpdatedAt:           rating.UpdatedAt.UTC(),
	}
}

func (m ratingModel) toEntity() entities.Rating {
	return entities.Rating{
		RatingID:            m.RatingID,
		ItemID:              m.ItemID,
		RaterSubscriptionID: m.RaterSubscriptionID,
		Stars:               m.Stars,
		Comment:             m.Comment,
		CreatedAt:           m.CreatedAt.UTC(),
		UpdatedAt:           m.UpdatedAt.UTC(),
	}
}

type exerciseModel struct {
	ExerciseID     string    `gorm:"column:exercise_id;primaryKey"`
	SubscriptionID string    `gorm:"column:subscription_id"`
	Ownership      string    `gorm:"column:ownership"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	Sport          string    `gorm:"column:sport"`
	VideoURL       string    `gorm:"column:video_url"`
	CreatedByUser  string    `gorm:"column:created_by_user"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (exerciseModel) TableName() string {
	return "exercises"
}

func exerciseModelFromEntity(exercise entities.Exercise) exerciseModel {
	return exerciseModel{
		ExerciseID:     exercise.ExerciseID,
		SubscriptionID: exercise.SubscriptionID,
		Ownership:      string(exercise.Ownership),
		Name:           exercise.Name,
		Description:    exercise.Description,
		Sport:          exercise.Sport,
		VideoURL:       exercise.VideoURL,
		CreatedByUser:  exercise.CreatedByUser,
		CreatedAt:      exercise.CreatedAt.UTC(),
		UpdatedAt:      exercise.UpdatedAt.UTC(),
	}
}

func (m exerciseModel) toEntity(parameterRows []exerciseParameterModel) entities.Exercise {
	parameters := make([]entities.ExerciseParameter, 0, len(parameterRows))
	for _, row := range parameterRows {
		parameters = append(parameters, entities.ExerciseParameter{
			ParameterID: row.ParameterID,
			Name:        row.Name,
			Value:       row.Value,
			Unit:        row.Unit,
		})
	}
	return entities.Exercise{
		ExerciseID:     m.ExerciseID,
		SubscriptionID: m.SubscriptionID,
		Ownership:      entities.ContentOwnership(m.Ownership),
		Name:           m.Name,
		Description:    m.Description,
		Sport:          m.Sport,
		VideoURL:       m.VideoURL,
		Parameters:     parameters,
		CreatedByUser:  m.CreatedByUser,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type exerciseParameterModel struct {
	ParameterID string `gorm:"column:parameter_id;primaryKey"`
	ExerciseID  string `gorm:"column:exercise_id"`
	Name        string `gorm:"column:name"`
	Value       string `gorm:"column:value"`
	Unit        string `gorm:"column:unit"`
}

func (exerciseParameterModel) TableName() string {
	return "exercise_parameters"
}

type objectiveModel struct {
	ObjectiveID    string    `gorm:"column:objective_id;primaryKey"`
	SubscriptionID string    `gorm:"column:subscription_id"`
	Ownership      string    `gorm:"column:ownership"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	Sport          string    `gorm:"column:sport"`
	Level          string    `gorm:"column:level"`
	CreatedByUser  string    `gorm:"column:created_by_user"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (objectiveModel) TableName() string {
	return "objectives"
}

func objectiveModelFromEntity(objective entities.Objective) objectiveModel {
	return objectiveModel{
		ObjectiveID:    objective.ObjectiveID,
		SubscriptionID: objective.SubscriptionID,
		Ownership:      string(objective.Ownership),
		Name:           objective.Name,
		Description:    objective.Description,
		Sport:          objective.Sport,
		Level:          objective.Level,
		CreatedByUser:  objective.CreatedByUser,
		CreatedAt:      objective.CreatedAt.UTC(),
		UpdatedAt:      objective.UpdatedAt.UTC(),
	}
}

func (m objectiveModel) toEntity(techniqueRows []techniqueModel) entities.Objective {
	techniques := make([]entities.Technique, 0, len(techniqueRows))
	for _, row := range techniqueRows {
		techniques = append(techniques, entities.Technique{
			TechniqueID: row.TechniqueID,
			Name:        row.Name,
			Description: row.Description,
			Order:       row.Order,
		})
	}
	return entities.Objective{
		ObjectiveID:    m.ObjectiveID,
		SubscriptionID: m.SubscriptionID,
		Ownership:      entities.ContentOwnership(m.Ownership),
		Name:           m.Name,
		Description:    m.Description,
		Sport:          m.Sport,
		Level:          m.Level,
		Techniques:     techniques,
		CreatedByUser:  m.CreatedByUser,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type techniqueModel struct {
	TechniqueID string `gorm:"column:technique_id;primaryKey"`
	ObjectiveID string `gorm:"column:objective_id"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	Order       int    `gorm:"column:technique_order"`
}

func (techniqueModel) TableName() string {
	return "objective_techniques"
}

type trainingPlanModel struct {
	PlanID         string    `gorm:"column:plan_id;primaryKey"`
	SubscriptionID string    `gorm:"column:subscription_id"`
	Ownership      string    `gorm:"column:ownership"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	Sport          string    `gorm:"column:sport"`
	CreatedByUser  string    `gorm:"column:created_by_user"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (trainingPlanModel) TableName() string {
	return "training_plans"
}

func trainingPlanModelFromEntity(plan entities.TrainingPlan) trainingPlanModel {
	return trainingPlanModel{
		PlanID:         plan.PlanID,
		SubscriptionID: plan.SubscriptionID,
		Ownership:      string(plan.Ownership),
		Name:           plan.Name,
		Description:    plan.Description,
		Sport:          plan.Sport,
		CreatedByUser:  plan.CreatedByUser,
		CreatedAt:      plan.CreatedAt.UTC(),
		UpdatedAt:      plan.UpdatedAt.UTC(),
	}
}

func (m trainingPlanModel) toEntity(objectiveRows []planObjectiveModel, workouts []entities.PlanWorkout) entities.TrainingPlan {
	objectives := make([]entities.PlanObjective, 0, len(objectiveRows))
	for _, row := range objectiveRows {
		objectives = append(objectives, entities.PlanObjective{
			AssignmentID: row.AssignmentID,
			ObjectiveID:  row.ObjectiveID,
			Week:         row.Week,
			Notes:        row.Notes,
		})
	}
	return entities.TrainingPlan{
		PlanID:         m.PlanID,
		SubscriptionID: m.SubscriptionID,
		Ownership:      entities.ContentOwnership(m.Ownership),
		Name:           m.Name,
		Description:    m.Description,
		Sport:          m.Sport,
		Objectives:     objectives,
		Workouts:       workouts,
		CreatedByUser:  m.CreatedByUser,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type planObjectiveModel struct {
	AssignmentID string `gorm:"column:assignment_id;primaryKey"`
	PlanID       string `gorm:"column:plan_id"`
	ObjectiveID  string `gorm:"column:objective_id"`
	Week         int    `gorm:"column:week"`
	Notes        string `gorm:"column:notes"`
}

func (planObjectiveModel) TableName() string {
	return "plan_objectives"
}

type planWorkoutModel struct {
	WorkoutID string `gorm:"column:workout_id;primaryKey"`
	PlanID    string `gorm:"column:plan_id"`
	Name      string `gorm:"column:name"`
	DayOfWeek int    `gorm:"column:day_of_week"`
}

func (planWorkoutModel) TableName() string {
	return "plan_workouts"
}

func (m planWorkoutModel) toEntity(slotRows []workoutExerciseModel) entities.PlanWorkout {
	exercises := make([]entities.WorkoutExercise, 0, len(slotRows))
	for _, row := range slotRows {
		exercises = append(exercises, entities.WorkoutExercise{
			AssignmentID: row.AssignmentID,
			ExerciseID:   row.ExerciseID,
			Sets:         row.Sets,
			Reps:         row.Reps,
			RestSeconds:  row.RestSeconds,
		})
	}
	return entities.PlanWorkout{
		WorkoutID: m.WorkoutID,
		Name:      m.Name,
		DayOfWeek: m.DayOfWeek,
		Exercises: exercises,
	}
}

type workoutExerciseModel struct {
	AssignmentID string `gorm:"column:assignment_id;primaryKey"`
	WorkoutID    string `gorm:"column:workout_id"`
	ExerciseID   string `gorm:"column:exercise_id"`
	Sets         int    `gorm:"column:sets"`
	Reps         int    `gorm:"column:reps"`
	RestSeconds  int    `gorm:"column:rest_seconds"`
}

func (workoutExerciseModel) TableName() string {
	return "workout_exercises"
}
