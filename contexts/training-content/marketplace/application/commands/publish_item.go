package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "playmaker/contexts/training-content/marketplace/application"
	"playmaker/contexts/training-content/marketplace/application/cloneengine"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

type PublishItemCommand struct {
	Type           entities.MarketplaceItemType
	SourceEntityID string
	SubscriptionID string
	UserID         string
}

type PublishItemResult struct {
	ItemID      string
	PublishedAt time.Time
}

// PublishItemUseCase promotes subscription-owned content into the
// shared catalog. The source entity itself is left untouched; the
// catalog entry captures a name/description snapshot that will not
// track later edits to the source.
type PublishItemUseCase struct {
	Catalog     ports.CatalogRepository
	Content     cloneengine.Engine
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u PublishItemUseCase) Execute(ctx context.Context, cmd PublishItemCommand) (PublishItemResult, error) {
	if strings.TrimSpace(cmd.SubscriptionID) == "" {
		return PublishItemResult{}, domainerrors.ErrMissingCaller
	}
	if !cmd.Type.Valid() || strings.TrimSpace(cmd.SourceEntityID) == "" {
		return PublishItemResult{}, domainerrors.ErrInvalidPublishRequest
	}

	logger := application.ResolveLogger(u.Logger)

	strategy, err := u.Content.ForType(cmd.Type)
	if err != nil {
		return PublishItemResult{}, err
	}
	snapshot, err := strategy.Snapshot(ctx, cmd.SourceEntityID)
	if err != nil {
		return PublishItemResult{}, err
	}
	// A subscription may only publish its own content. System content
	// carries no subscription id and is rejected by the same check.
	if snapshot.SubscriptionID != cmd.SubscriptionID {
		return PublishItemResult{}, domainerrors.ErrNotContentOwner
	}

	itemID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return PublishItemResult{}, err
	}
	now := time.Now().UTC()
	if u.Clock != nil {
		now = u.Clock.Now().UTC()
	}

	item := entities.MarketplaceItem{
		ItemID:                    itemID,
		Type:                      cmd.Type,
		Sport:                     snapshot.Sport,
		SourceEntityID:            cmd.SourceEntityID,
		PublishedBySubscriptionID: cmd.SubscriptionID,
		PublishedByUserID:         cmd.UserID,
		PublishedAt:               now,
		Name:                      snapshot.Name,
		Description:               snapshot.Description,
		IsSystemOfficial:          false,
		TotalDownloads:            0,
		UpdatedAt:                 now,
	}
	if err := u.Catalog.CreateItem(ctx, item); err != nil {
		return PublishItemResult{}, err
	}

	logger.Info("marketplace item published",
		"event", "marketplace_item_published",
		"module", "training-content/marketplace",
		"layer", "application",
		"item_id", itemID,
		"item_type", string(cmd.Type),
		"source_entity_id", cmd.SourceEntityID,
		"subscription_id", cmd.SubscriptionID,
	)

	return PublishItemResult{ItemID: itemID, PublishedAt: now}, nil
}
