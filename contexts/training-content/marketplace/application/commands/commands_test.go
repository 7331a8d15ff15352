package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"playmaker/contexts/training-content/marketplace/adapters/memory"
	"playmaker/contexts/training-content/marketplace/application/cloneengine"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
)

func newCommandFixture(seed memory.SeedData) (*memory.Store, cloneengine.Engine) {
	store := memory.NewStore(seed, nil)
	engine := cloneengine.NewEngine(cloneengine.Dependencies{
		Exercises:   store,
		Objectives:  store,
		Plans:       store,
		Clock:       store,
		IDGenerator: store,
	})
	return store, engine
}

func seedExercise(subscriptionID string) entities.Exercise {
	return entities.Exercise{
		ExerciseID:     "ex-1",
		SubscriptionID: subscriptionID,
		Ownership:      entities.OwnershipUser,
		Name:           "Ladder Drills",
		Description:    "Footwork agility ladder circuit.",
		Sport:          "soccer",
		Parameters: []entities.ExerciseParameter{
			{ParameterID: "p-1", Name: "duration", Value: "45", Unit: "seconds"},
		},
	}
}

func TestPublishItemSnapshotsSource(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{Exercises: []entities.Exercise{seedExercise("sub-a")}})
	useCase := PublishItemUseCase{Catalog: store, Content: engine, Clock: store, IDGenerator: store}

	result, err := useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.ItemTypeExercise,
		SourceEntityID: "ex-1",
		SubscriptionID: "sub-a",
		UserID:         "user-a",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if result.ItemID == "" {
		t.Fatal("expected an item id")
	}

	item, err := store.GetItem(context.Background(), result.ItemID)
	if err != nil {
		t.Fatalf("fetch item failed: %v", err)
	}
	if item.Name != "Ladder Drills" {
		t.Fatalf("snapshot lost the source name: %s", item.Name)
	}
	if item.Sport != "soccer" {
		t.Fatalf("snapshot lost the source sport: %s", item.Sport)
	}
	if item.SourceEntityID != "ex-1" {
		t.Fatalf("wrong source reference: %s", item.SourceEntityID)
	}
	if item.IsSystemOfficial {
		t.Fatal("subscriber publish must not be marked official")
	}
	if item.TotalDownloads != 0 || item.TotalRatings != 0 {
		t.Fatal("fresh item must start with zeroed counters")
	}
}

func TestPublishItemRejectsForeignContent(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{Exercises: []entities.Exercise{seedExercise("sub-a")}})
	useCase := PublishItemUseCase{Catalog: store, Content: engine, Clock: store, IDGenerator: store}

	_, err := useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.ItemTypeExercise,
		SourceEntityID: "ex-1",
		SubscriptionID: "sub-b",
	})
	if !errors.Is(err, domainerrors.ErrNotContentOwner) {
		t.Fatalf("expected ownership rejection, got %v", err)
	}
}

func TestPublishItemRejectsSystemContent(t *testing.T) {
	exercise := seedExercise("")
	exercise.Ownership = entities.OwnershipSystem
	store, engine := newCommandFixture(memory.SeedData{Exercises: []entities.Exercise{exercise}})
	useCase := PublishItemUseCase{Catalog: store, Content: engine, Clock: store, IDGenerator: store}

	_, err := useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.ItemTypeExercise,
		SourceEntityID: "ex-1",
		SubscriptionID: "sub-a",
	})
	if !errors.Is(err, domainerrors.ErrNotContentOwner) {
		t.Fatalf("expected ownership rejection, got %v", err)
	}
}

func TestPublishItemMissingSource(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{})
	useCase := PublishItemUseCase{Catalog: store, Content: engine, Clock: store, IDGenerator: store}

	_, err := useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.ItemTypeExercise,
		SourceEntityID: "ex-missing",
		SubscriptionID: "sub-a",
	})
	if !errors.Is(err, domainerrors.ErrContentNotFound) {
		t.Fatalf("expected content not found, got %v", err)
	}
}

func TestPublishItemValidation(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{})
	useCase := PublishItemUseCase{Catalog: store, Content: engine, Clock: store, IDGenerator: store}

	_, err := useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.ItemTypeExercise,
		SourceEntityID: "ex-1",
	})
	if !errors.Is(err, domainerrors.ErrMissingCaller) {
		t.Fatalf("expected missing caller, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.MarketplaceItemType("playlist"),
		SourceEntityID: "ex-1",
		SubscriptionID: "sub-a",
	})
	if !errors.Is(err, domainerrors.ErrInvalidPublishRequest) {
		t.Fatalf("expected invalid publish request, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), PublishItemCommand{
		Type:           entities.ItemTypeExercise,
		SubscriptionID: "sub-a",
	})
	if !errors.Is(err, domainerrors.ErrInvalidPublishRequest) {
		t.Fatalf("expected invalid publish request, got %v", err)
	}
}

func publishedExerciseItem() entities.MarketplaceItem {
	return entities.MarketplaceItem{
		ItemID:                    "itm-1",
		Type:                      entities.ItemTypeExercise,
		Sport:                     "soccer",
		SourceEntityID:            "ex-1",
		PublishedBySubscriptionID: "sub-a",
		PublishedAt:               time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Name:                      "Ladder Drills",
	}
}

func TestDownloadItemCreatesIndependentCopy(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{
		Items:     []entities.MarketplaceItem{publishedExerciseItem()},
		Exercises: []entities.Exercise{seedExercise("sub-a")},
	})
	useCase := DownloadItemUseCase{Catalog: store, Content: engine, Clock: store}

	result, err := useCase.Execute(context.Background(), DownloadItemCommand{
		ItemID:         "itm-1",
		SubscriptionID: "sub-b",
		UserID:         "user-b",
	})
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if result.EntityID == "ex-1" {
		t.Fatal("download must produce a new entity id")
	}

	clone, err := store.GetExercise(context.Background(), result.EntityID)
	if err != nil {
		t.Fatalf("fetch clone failed: %v", err)
	}
	if clone.Ownership != entities.OwnershipMarketplaceUser {
		t.Fatalf("expected marketplace_user ownership, got %s", clone.Ownership)
	}
	if clone.SubscriptionID != "sub-b" {
		t.Fatalf("clone belongs to wrong subscription: %s", clone.SubscriptionID)
	}

	item, err := store.GetItem(context.Background(), "itm-1")
	if err != nil {
		t.Fatalf("fetch item failed: %v", err)
	}
	if item.TotalDownloads != 1 {
		t.Fatalf("expected 1 download, got %d", item.TotalDownloads)
	}
}

func TestDownloadItemCounterIsMonotonic(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{
		Items:     []entities.MarketplaceItem{publishedExerciseItem()},
		Exercises: []entities.Exercise{seedExercise("sub-a")},
	})
	useCase := DownloadItemUseCase{Catalog: store, Content: engine, Clock: store}

	const downloads = 20
	var wg sync.WaitGroup
	errs := make(chan error, downloads)
	for i := 0; i < downloads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := useCase.Execute(context.Background(), DownloadItemCommand{
				ItemID:         "itm-1",
				SubscriptionID: "sub-b",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent download failed: %v", err)
		}
	}

	item, err := store.GetItem(context.Background(), "itm-1")
	if err != nil {
		t.Fatalf("fetch item failed: %v", err)
	}
	if item.TotalDownloads != downloads {
		t.Fatalf("expected %d downloads, got %d", downloads, item.TotalDownloads)
	}
}

func TestDownloadItemDanglingSource(t *testing.T) {
	// Item exists but its source entity was deleted after publishing.
	store, engine := newCommandFixture(memory.SeedData{
		Items: []entities.MarketplaceItem{publishedExerciseItem()},
	})
	useCase := DownloadItemUseCase{Catalog: store, Content: engine, Clock: store}

	_, err := useCase.Execute(context.Background(), DownloadItemCommand{
		ItemID:         "itm-1",
		SubscriptionID: "sub-b",
	})
	if !errors.Is(err, domainerrors.ErrContentNotFound) {
		t.Fatalf("expected content not found, got %v", err)
	}

	// A failed download must not bump the counter.
	item, err := store.GetItem(context.Background(), "itm-1")
	if err != nil {
		t.Fatalf("fetch item failed: %v", err)
	}
	if item.TotalDownloads != 0 {
		t.Fatalf("counter moved on failed download: %d", item.TotalDownloads)
	}
}

func TestDownloadItemUnknownItem(t *testing.T) {
	store, engine := newCommandFixture(memory.SeedData{})
	useCase := DownloadItemUseCase{Catalog: store, Content: engine, Clock: store}

	_, err := useCase.Execute(context.Background(), DownloadItemCommand{
		ItemID:         "itm-missing",
		SubscriptionID: "sub-b",
	})
	if !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
}

func TestRateItemReplacesPreviousRating(t *testing.T) {
	store, _ := newCommandFixture(memory.SeedData{
		Items: []entities.MarketplaceItem{publishedExerciseItem()},
	})
	useCase := RateItemUseCase{Catalog: store, Clock: store, IDGenerator: store}

	first, err := useCase.Execute(context.Background(), RateItemCommand{
		ItemID:         "itm-1",
		SubscriptionID: "sub-b",
		Stars:          3,
	})
	if err != nil {
		t.Fatalf("first rating failed: %v", err)
	}
	if first.TotalRatings != 1 || first.AverageRating != 3.0 {
		t.Fatalf("unexpected aggregates after first rating: %d ratings, average %.2f",
			first.TotalRatings, first.AverageRating)
	}

	second, err := useCase.Execute(context.Background(), RateItemCommand{
		ItemID:         "itm-1",
		SubscriptionID: "sub-b",
		Stars:          5,
		Comment:        "Game changer after a second season.",
	})
	if err != nil {
		t.Fatalf("repeat rating failed: %v", err)
	}
	if second.TotalRatings != 1 {
		t.Fatalf("repeat rating must replace, got %d ratings", second.TotalRatings)
	}
	if second.AverageRating != 5.0 {
		t.Fatalf("expected average 5.0, got %.2f", second.AverageRating)
	}
}

func TestRateItemAveragesAcrossSubscriptions(t *testing.T) {
	store, _ := newCommandFixture(memory.SeedData{
		Items: []entities.MarketplaceItem{publishedExerciseItem()},
	})
	useCase := RateItemUseCase{Catalog: store, Clock: store, IDGenerator: store}

	for _, rating := range []struct {
		subscription string
		stars        int
	}{
		{"sub-b", 4},
		{"sub-c", 5},
		{"sub-d", 3},
	} {
		if _, err := useCase.Execute(context.Background(), RateItemCommand{
			ItemID:         "itm-1",
			SubscriptionID: rating.subscription,
			Stars:          rating.stars,
		}); err != nil {
			t.Fatalf("rating by %s failed: %v", rating.subscription, err)
		}
	}

	item, err := store.GetItem(context.Background(), "itm-1")
	if err != nil {
		t.Fatalf("fetch item failed: %v", err)
	}
	if item.TotalRatings != 3 {
		t.Fatalf("expected 3 ratings, got %d", item.TotalRatings)
	}
	if item.AverageRating != 4.0 {
		t.Fatalf("expected average 4.0, got %.2f", item.AverageRating)
	}
}

func TestRateItemStarsRange(t *testing.T) {
	store, _ := newCommandFixture(memory.SeedData{
		Items: []entities.MarketplaceItem{publishedExerciseItem()},
	})
	useCase := RateItemUseCase{Catalog: store, Clock: store, IDGenerator: store}

	for _, stars := range []int{0, 6, -1} {
		_, err := useCase.Execute(context.Background(), RateItemCommand{
			ItemID:         "itm-1",
			SubscriptionID: "sub-b",
			Stars:          stars,
		})
		if !errors.Is(err, domainerrors.ErrInvalidStars) {
			t.Fatalf("stars=%d: expected invalid stars, got %v", stars, err)
		}
	}
	for _, stars := range []int{1, 5} {
		if _, err := useCase.Execute(context.Background(), RateItemCommand{
			ItemID:         "itm-1",
			SubscriptionID: "sub-b",
			Stars:          stars,
		}); err != nil {
			t.Fatalf("stars=%d: expected success, got %v", stars, err)
		}
	}
}

func TestRateItemUnknownItem(t *testing.T) {
	store, _ := newCommandFixture(memory.SeedData{})
	useCase := RateItemUseCase{Catalog: store, Clock: store, IDGenerator: store}

	_, err := useCase.Execute(context.Background(), RateItemCommand{
		ItemID:         "itm-missing",
		SubscriptionID: "sub-b",
		Stars:          4,
	})
	if !errors.Is(err, domainerrors.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
}
