package queries

import (
	"context"
	"log/slog"
	"strings"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

type ListMyItemsQuery struct {
	SubscriptionID string
}

type ListMyItemsResult struct {
	Items []entities.MarketplaceItem
}

// ListMyItemsUseCase returns the caller's published items, newest
// first.
type ListMyItemsUseCase struct {
	Catalog ports.CatalogRepository
	Logger  *slog.Logger
}

func (u ListMyItemsUseCase) Execute(ctx context.Context, query ListMyItemsQuery) (ListMyItemsResult, error) {
	if strings.TrimSpace(query.SubscriptionID) == "" {
		return ListMyItemsResult{}, domainerrors.ErrMissingCaller
	}
	items, err := u.Catalog.ListItemsBySubscription(ctx, query.SubscriptionID)
	if err != nil {
		return ListMyItemsResult{}, err
	}
	return ListMyItemsResult{Items: items}, nil
}
