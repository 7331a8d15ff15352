package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) SearchItems(ctx context.Context, filter ports.ItemSearchFilter) ([]entities.MarketplaceItem, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	tx := applyItemPredicate(r.db.WithContext(ctx).Model(&itemModel{}), filter)
	tx = applyItemSort(tx, filter.Filter)

	var rows []itemModel
	if err := tx.Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.MarketplaceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(nil))
	}
	return items, nil
}

func (r *Repository) CountItems(ctx context.Context, filter ports.ItemSearchFilter) (int, error) {
	var count int64
	tx := applyItemPredicate(r.db.WithContext(ctx).Model(&itemModel{}), filter)
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) GetItem(ctx context.Context, itemID string) (entities.MarketplaceItem, error) {
	var row itemModel
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.MarketplaceItem{}, domainerrors.ErrItemNotFound
		}
		return entities.MarketplaceItem{}, err
	}

	var ratingRows []ratingModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&ratingRows).
		Error; err != nil {
		return entities.MarketplaceItem{}, err
	}
	return row.toEntity(ratingRows), nil
}

func (r *Repository) ListItemsBySubscription(ctx context.Context, subscriptionID string) ([]entities.MarketplaceItem, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).
		Where("published_by_subscription_id = ?", subscriptionID).
		Order("published_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.MarketplaceItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(nil))
	}
	return items, nil
}

func (r *Repository) CreateItem(ctx context.Context, item entities.MarketplaceItem) error {
	row := itemModelFromEntity(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

// IncrementDownloads applies the counter bump as a single UPDATE so
// concurrent downloads of the same item never lose an increment.
func (r *Repository) IncrementDownloads(ctx context.Context, itemID string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&itemModel{}).
		Where("item_id = ?", itemID).
		Updates(map[string]any{
			"total_downloads": gorm.Expr("total_downloads + ?", 1),
			"updated_at":      now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

// UpsertRating runs the upsert and the aggregate recompute in one
// transaction holding the item row lock, so two raters of the same
// item serialize and neither write is lost.
func (r *Repository) UpsertRating(ctx context.Context, itemID string, rating entities.Rating) (entities.MarketplaceItem, error) {
	var updated itemModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itemRow itemModel
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("item_id = ?", itemID).
			First(&itemRow).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrItemNotFound
			}
			return err
		}

		ratingRow := ratingModelFromEntity(rating)
		if err := tx.
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "item_id"}, {Name: "rater_subscription_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"stars", "comment", "updated_at",
				}),
			}).
			Create(&ratingRow).
			Error; err != nil {
			return err
		}

		var agg struct {
			Total   int64
			Average float64
		}
		if err := tx.
			Model(&ratingModel{}).
			Select("COUNT(*) AS total, COALESCE(AVG(stars), 0) AS average").
			Where("item_id = ?", itemID).
			Scan(&agg).
			Error; err != nil {
			return err
		}

		if err := tx.
			Model(&itemModel{}).
			Where("item_id = ?", itemID).
			Updates(map[string]any{
				"total_ratings":  agg.Total,
				"average_rating": agg.Average,
				"updated_at":     rating.UpdatedAt.UTC(),
			}).
			Error; err != nil {
			return err
		}

		itemRow.TotalRatings = int(agg.Total)
		itemRow.AverageRating = agg.Average
		itemRow.UpdatedAt = rating.UpdatedAt.UTC()
		updated = itemRow
		return nil
	})
	if err != nil {
		return entities.MarketplaceItem{}, err
	}
	return updated.toEntity(nil), nil
}

func (r *Repository) GetExercise(ctx context.Context, exerciseID string) (entities.Exercise, error) {
	var row exerciseModel
	err := r.db.WithContext(ctx).
		Where("exercise_id = ?", exerciseID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Exercise{}, domainerrors.ErrContentNotFound
		}
		return entities.Exercise{}, err
	}

	var parameterRows []exerciseParameterModel
	if err := r.db.WithContext(ctx).
		Where("exercise_id = ?", exerciseID).
		Order("parameter_id ASC").
		Find(&parameterRows).
		Error; err != nil {
		return entities.Exercise{}, err
	}
	return row.toEntity(parameterRows), nil
}

func (r *Repository) CreateExercise(ctx context.Context, exercise entities.Exercise) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := exerciseModelFromEntity(exercise)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}
		for _, parameter := range exercise.Parameters {
			parameterRow := exerciseParameterModel{
				ParameterID: parameter.ParameterID,
				ExerciseID:  exercise.ExerciseID,
				Name:        parameter.Name,
				Value:       parameter.Value,
				Unit:        parameter.Unit,
			}
			if err := tx.Create(&parameterRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetObjective(ctx context.Context, objectiveID string) (entities.Objective, error) {
	var row objectiveModel
	err := r.db.WithContext(ctx).
		Where("objective_id = ?", objectiveID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Objective{}, domainerrors.ErrContentNotFound
		}
		return entities.Objective{}, err
	}

	var techniqueRows []techniqueModel
	if err := r.db.WithContext(ctx).
		Where("objective_id = ?", objectiveID).
		Order("technique_order ASC").
		Find(&techniqueRows).
		Error; err != nil {
		return entities.Objective{}, err
	}
	return row.toEntity(techniqueRows), nil
}

func (r *Repository) CreateObjective(ctx context.Context, objective entities.Objective) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := objectiveModelFromEntity(objective)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}
		for _, technique := range objective.Techniques {
			techniqueRow := techniqueModel{
				TechniqueID: technique.TechniqueID,
				ObjectiveID: objective.ObjectiveID,
				Name:        technique.Name,
				Description: technique.Description,
				Order:       technique.Order,
			}
			if err := tx.Create(&techniqueRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetTrainingPlan(ctx context.Context, planID string) (entities.TrainingPlan, error) {
	var row trainingPlanModel
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TrainingPlan{}, domainerrors.ErrContentNotFound
		}
		return entities.TrainingPlan{}, err
	}

	var objectiveRows []planObjectiveModel
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("week ASC").
		Find(&objectiveRows).
		Error; err != nil {
		return entities.TrainingPlan{}, err
	}

	var workoutRows []planWorkoutModel
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("day_of_week ASC").
		Find(&workoutRows).
		Error; err != nil {
		return entities.TrainingPlan{}, err
	}

	workouts := make([]entities.PlanWorkout, 0, len(workoutRows))
	for _, workoutRow := range workoutRows {
		var slotRows []workoutExerciseModel
		if err := r.db.WithContext(ctx).
			Where("workout_id = ?", workoutRow.WorkoutID).
			Order("assignment_id ASC").
			Find(&slotRows).
			Error; err != nil {
			return entities.TrainingPlan{}, err
		}
		workouts = append(workouts, workoutRow.toEntity(slotRows))
	}

	return row.toEntity(objectiveRows, workouts), nil
}

func (r *Repository) CreateTrainingPlan(ctx context.Context, plan entities.TrainingPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := trainingPlanModelFromEntity(plan)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrRepositoryInvariantBroke
			}
			return err
		}
		for _, assignment := range plan.Objectives {
			assignmentRow := planObjectiveModel{
				AssignmentID: assignment.AssignmentID,
				PlanID:       plan.PlanID,
				ObjectiveID:  assignment.ObjectiveID,
				Week:         assignment.Week,
				Notes:        assignment.Notes,
			}
			if err := tx.Create(&assignmentRow).Error; err != nil {
				return err
			}
		}
		for _, workout := range plan.Workouts {
			workoutRow := planWorkoutModel{
				WorkoutID: workout.WorkoutID,
				PlanID:    plan.PlanID,
				Name:      workout.Name,
				DayOfWeek: workout.DayOfWeek,
			}
			if err := tx.Create(&workoutRow).Error; err != nil {
				return err
			}
			for _, slot := range workout.Exercises {
				slotRow := workoutExerciseModel{
					AssignmentID: slot.AssignmentID,
					WorkoutID:    workout.WorkoutID,
					ExerciseID:   slot.ExerciseID,
					Sets:         slot.Sets,
					Reps:         slot.Reps,
					RestSeconds:  slot.RestSeconds,
				}
				if err := tx.Create(&slotRow).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func applyItemPredicate(tx *gorm.DB, filter ports.ItemSearchFilter) *gorm.DB {
	tx = tx.Where("LOWER(sport) = ?", strings.ToLower(strings.TrimSpace(filter.Sport)))
	if filter.Type != "" {
		tx = tx.Where("item_type = ?", string(filter.Type))
	}
	switch filter.Filter {
	case entities.FilterOfficial:
		tx = tx.Where("is_system_official = ?", true)
	case entities.FilterCommunity:
		tx = tx.Where("is_system_official = ?", false)
	}
	if term := strings.ToLower(strings.TrimSpace(filter.SearchTerm)); term != "" {
		pattern := "%" + term + "%"
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	return tx
}

func applyItemSort(tx *gorm.DB, filter entities.MarketplaceFilter) *gorm.DB {
	switch filter {
	case entities.FilterPopular:
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "total_downloads"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "item_id"}, Desc: false})
	case entities.FilterTopRated:
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "average_rating"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "total_ratings"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "item_id"}, Desc: false})
	default:
		return tx.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "published_at"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "item_id"}, Desc: false})
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
