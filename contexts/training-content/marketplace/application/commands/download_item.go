package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "playmaker/contexts/training-content/marketplace/application"
	"playmaker/contexts/training-content/marketplace/application/cloneengine"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

type DownloadItemCommand struct {
	ItemID         string
	SubscriptionID string
	UserID         string
}

type DownloadItemResult struct {
	ItemID   string
	EntityID string
}

// DownloadItemUseCase acquires an independent copy of a cataloged
// entity for the caller's subscription. There is no ownership check:
// downloading one's own published item is allowed and still produces a
// distinct marketplace_user copy.
type DownloadItemUseCase struct {
	Catalog ports.CatalogRepository
	Content cloneengine.Engine
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u DownloadItemUseCase) Execute(ctx context.Context, cmd DownloadItemCommand) (DownloadItemResult, error) {
	if strings.TrimSpace(cmd.SubscriptionID) == "" {
		return DownloadItemResult{}, domainerrors.ErrMissingCaller
	}

	logger := application.ResolveLogger(u.Logger)

	item, err := u.Catalog.GetItem(ctx, cmd.ItemID)
	if err != nil {
		return DownloadItemResult{}, err
	}

	strategy, err := u.Content.ForType(item.Type)
	if err != nil {
		return DownloadItemResult{}, err
	}
	entityID, err := strategy.Clone(ctx, item.SourceEntityID, cloneengine.Target{
		SubscriptionID: cmd.SubscriptionID,
		UserID:         cmd.UserID,
	})
	if err != nil {
		return DownloadItemResult{}, err
	}

	now := time.Now().UTC()
	if u.Clock != nil {
		now = u.Clock.Now().UTC()
	}
	if err := u.Catalog.IncrementDownloads(ctx, item.ItemID, now); err != nil {
		return DownloadItemResult{}, err
	}

	logger.Info("marketplace item downloaded",
		"event", "marketplace_item_downloaded",
		"module", "training-content/marketplace",
		"layer", "application",
		"item_id", item.ItemID,
		"item_type", string(item.Type),
		"entity_id", entityID,
		"subscription_id", cmd.SubscriptionID,
	)

	return DownloadItemResult{ItemID: item.ItemID, EntityID: entityID}, nil
}
