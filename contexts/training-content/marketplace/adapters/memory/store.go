package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	application "playmaker/contexts/training-content/marketplace/application"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

// SeedData is the initial catalog and content state for the in-memory
// runtime. Seeded items published by the platform should carry
// IsSystemOfficial set.
type SeedData struct {
	Items      []entities.MarketplaceItem
	Exercises  []entities.Exercise
	Objectives []entities.Objective
	Plans      []entities.TrainingPlan
}

// Store is an in-memory adapter implementing the marketplace ports for
// local runtime and tests. It is not intended as production
// persistence.
type Store struct {
	mu         sync.RWMutex
	items      map[string]entities.MarketplaceItem
	exercises  map[string]entities.Exercise
	objectives map[string]entities.Objective
	plans      map[string]entities.TrainingPlan
	sequence   uint64
	logger     *slog.Logger
}

func NewStore(seed SeedData, logger *slog.Logger) *Store {
	store := &Store{
		items:      make(map[string]entities.MarketplaceItem, len(seed.Items)),
		exercises:  make(map[string]entities.Exercise, len(seed.Exercises)),
		objectives: make(map[string]entities.Objective, len(seed.Objectives)),
		plans:      make(map[string]entities.TrainingPlan, len(seed.Plans)),
		logger:     application.ResolveLogger(logger),
	}
	for _, item := range seed.Items {
		store.items[item.ItemID] = copyItem(item)
	}
	for _, exercise := range seed.Exercises {
		store.exercises[exercise.ExerciseID] = copyExercise(exercise)
	}
	for _, objective := range seed.Objectives {
		store.objectives[objective.ObjectiveID] = copyObjective(objective)
	}
	for _, plan := range seed.Plans {
		store.plans[plan.PlanID] = copyPlan(plan)
	}
	return store
}

func (s *Store) SearchItems(_ context.Context, filter ports.ItemSearchFilter) ([]entities.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matchItems(filter)
	sortItems(matched, filter.Filter)

	start := (filter.Page - 1) * filter.PageSize
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if filter.PageSize <= 0 {
		end = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]entities.MarketplaceItem, 0, end-start)
	for _, item := range matched[start:end] {
		page = append(page, copyItem(item))
	}

	s.logger.Debug("items searched from memory store",
		"event", "memory_search_items",
		"module", "training-content/marketplace",
		"layer", "adapter",
		"start", start,
		"end", end,
		"total", len(matched),
	)

	return page, nil
}

func (s *Store) CountItems(_ context.Context, filter ports.ItemSearchFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matchItems(filter)), nil
}

func (s *Store) GetItem(_ context.Context, itemID string) (entities.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return entities.MarketplaceItem{}, domainerrors.ErrItemNotFound
	}
	return copyItem(item), nil
}

func (s *Store) ListItemsBySubscription(_ context.Context, subscriptionID string) ([]entities.MarketplaceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.MarketplaceItem, 0)
	for _, item := range s.items {
		if item.PublishedBySubscriptionID == subscriptionID {
			result = append(result, copyItem(item))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].PublishedAt.Equal(result[j].PublishedAt) {
			return result[i].ItemID < result[j].ItemID
		}
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})
	return result, nil
}

func (s *Store) CreateItem(_ context.Context, item entities.MarketplaceItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ItemID]; exists {
		return fmt.Errorf("item %s already exists", item.ItemID)
	}
	s.items[item.ItemID] = copyItem(item)
	return nil
}

func (s *Store) IncrementDownloads(_ context.Context, itemID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return domainerrors.ErrItemNotFound
	}
	item.TotalDownloads++
	item.UpdatedAt = now.UTC()
	s.items[itemID] = item
	return nil
}

func (s *Store) UpsertRating(_ context.Context, itemID string, rating entities.Rating) (entities.MarketplaceItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return entities.MarketplaceItem{}, domainerrors.ErrItemNotFound
	}

	updated := false
	for i, existing := range item.Ratings {
		if existing.RaterSubscriptionID == rating.RaterSubscriptionID {
			existing.Stars = rating.Stars
			existing.Comment = rating.Comment
			existing.UpdatedAt = rating.UpdatedAt
			item.Ratings[i] = existing
			updated = true
			break
		}
	}
	if !updated {
		item.Ratings = append(item.Ratings, rating)
	}

	total := len(item.Ratings)
	sum := 0
	for _, existing := range item.Ratings {
		sum += existing.Stars
	}
	item.TotalRatings = total
	item.AverageRating = float64(sum) / float64(total)
	item.UpdatedAt = rating.UpdatedAt

	s.items[itemID] = item
	return copyItem(item), nil
}

func (s *Store) GetExercise(_ context.Context, exerciseID string) (entities.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercise, ok := s.exercises[exerciseID]
	if !ok {
		return entities.Exercise{}, domainerrors.ErrContentNotFound
	}
	return copyExercise(exercise), nil
}

func (s *Store) CreateExercise(_ context.Context, exercise entities.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.exercises[exercise.ExerciseID]; exists {
		return fmt.Errorf("exercise %s already exists", exercise.ExerciseID)
	}
	s.exercises[exercise.ExerciseID] = copyExercise(exercise)
	return nil
}

func (s *Store) GetObjective(_ context.Context, objectiveID string) (entities.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objective, ok := s.objectives[objectiveID]
	if !ok {
		return entities.Objective{}, domainerrors.ErrContentNotFound
	}
	return copyObjective(objective), nil
}

func (s *Store) CreateObjective(_ context.Context, objective entities.Objective) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objectives[objective.ObjectiveID]; exists {
		return fmt.Errorf("objective %s already exists", objective.ObjectiveID)
	}
	s.objectives[objective.ObjectiveID] = copyObjective(objective)
	return nil
}

func (s *Store) GetTrainingPlan(_ context.Context, planID string) (entities.TrainingPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[planID]
	if !ok {
		return entities.TrainingPlan{}, domainerrors.ErrContentNotFound
	}
	return copyPlan(plan), nil
}

func (s *Store) CreateTrainingPlan(_ context.Context, plan entities.TrainingPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plans[plan.PlanID]; exists {
		return fmt.Errorf("training plan %s already exists", plan.PlanID)
	}
	s.plans[plan.PlanID] = copyPlan(plan)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	next := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("mem-%06d", next), nil
}

func (s *Store) matchItems(filter ports.ItemSearchFilter) []entities.MarketplaceItem {
	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))

	matched := make([]entities.MarketplaceItem, 0)
	for _, item := range s.items {
		if !strings.EqualFold(item.Sport, filter.Sport) {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		switch filter.Filter {
		case entities.FilterOfficial:
			if !item.IsSystemOfficial {
				continue
			}
		case entities.FilterCommunity:
			if item.IsSystemOfficial {
				continue
			}
		}
		if term != "" {
			name := strings.ToLower(item.Name)
			description := strings.ToLower(item.Description)
			if !strings.Contains(name, term) && !strings.Contains(description, term) {
				continue
			}
		}
		matched = append(matched, item)
	}
	return matched
}

func sortItems(items []entities.MarketplaceItem, filter entities.MarketplaceFilter) {
	sort.Slice(items, func(i, j int) bool {
		switch filter {
		case entities.FilterPopular:
			if items[i].TotalDownloads == items[j].TotalDownloads {
				return items[i].ItemID < items[j].ItemID
			}
			return items[i].TotalDownloads > items[j].TotalDownloads
		case entities.FilterTopRated:
			if items[i].AverageRating == items[j].AverageRating {
				if items[i].TotalRatings == items[j].TotalRatings {
					return items[i].ItemID < items[j].ItemID
				}
				return items[i].TotalRatings > items[j].TotalRatings
			}
			return items[i].AverageRating > items[j].AverageRating
		default:
			if items[i].PublishedAt.Equal(items[j].PublishedAt) {
				return items[i].ItemID < items[j].ItemID
			}
			return items[i].PublishedAt.After(items[j].PublishedAt)
		}
	})
}

func copyItem(item entities.MarketplaceItem) entities.MarketplaceItem {
	clone := item
	clone.Ratings = append([]entities.Rating(nil), item.Ratings...)
	return clone
}

func copyExercise(exercise entities.Exercise) entities.Exercise {
	clone := exercise
	clone.Parameters = append([]entities.ExerciseParameter(nil), exercise.Parameters...)
	return clone
}

func copyObjective(objective entities.Objective) entities.Objective {
	clone := objective
	clone.Techniques = append([]entities.Technique(nil), objective.Techniques...)
	return clone
}

func copyPlan(plan entities.TrainingPlan) entities.TrainingPlan {
	clone := plan
	clone.Objectives = append([]entities.PlanObjective(nil), plan.Objectives...)
	clone.Workouts = make([]entities.PlanWorkout, 0, len(plan.Workouts))
	for _, workout := range plan.Workouts {
		workoutClone := workout
		workoutClone.Exercises = append([]entities.WorkoutExercise(nil), workout.Exercises...)
		clone.Workouts = append(clone.Workouts, workoutClone)
	}
	return clone
}
