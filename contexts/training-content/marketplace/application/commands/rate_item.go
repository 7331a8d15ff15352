package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "playmaker/contexts/training-content/marketplace/application"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

type RateItemCommand struct {
	ItemID         string
	SubscriptionID string
	Stars          int
	Comment        string
}

type RateItemResult struct {
	AverageRating float64
	TotalRatings  int
}

// RateItemUseCase upserts the caller's rating: a repeat rating from
// the same subscription replaces the previous one instead of adding a
// second entry. Aggregate recomputation happens inside the repository
// upsert so concurrent raters never lose a write.
type RateItemUseCase struct {
	Catalog     ports.CatalogRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RateItemUseCase) Execute(ctx context.Context, cmd RateItemCommand) (RateItemResult, error) {
	if strings.TrimSpace(cmd.SubscriptionID) == "" {
		return RateItemResult{}, domainerrors.ErrMissingCaller
	}
	if cmd.Stars < 1 || cmd.Stars > 5 {
		return RateItemResult{}, domainerrors.ErrInvalidStars
	}

	logger := application.ResolveLogger(u.Logger)

	ratingID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return RateItemResult{}, err
	}
	now := time.Now().UTC()
	if u.Clock != nil {
		now = u.Clock.Now().UTC()
	}

	item, err := u.Catalog.UpsertRating(ctx, cmd.ItemID, entities.Rating{
		RatingID:            ratingID,
		ItemID:              cmd.ItemID,
		RaterSubscriptionID: cmd.SubscriptionID,
		Stars:               cmd.Stars,
		Comment:             cmd.Comment,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
	if err != nil {
		return RateItemResult{}, err
	}

	logger.Info("marketplace item rated",
		"event", "marketplace_item_rated",
		"module", "training-content/marketplace",
		"layer", "application",
		"item_id", cmd.ItemID,
		"subscription_id", cmd.SubscriptionID,
		"stars", cmd.Stars,
		"average_rating", item.AverageRating,
		"total_ratings", item.TotalRatings,
	)

	return RateItemResult{
		AverageRating: item.AverageRating,
		TotalRatings:  item.TotalRatings,
	}, nil
}
