package queries

import (
	"context"
	"log/slog"

	"playmaker/contexts/training-content/marketplace/domain/entities"
	"playmaker/contexts/training-content/marketplace/ports"
)

type GetItemQuery struct {
	ItemID string
}

type GetItemResult struct {
	Item entities.MarketplaceItem
}

type GetItemUseCase struct {
	Catalog ports.CatalogRepository
	Logger  *slog.Logger
}

func (u GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (GetItemResult, error) {
	item, err := u.Catalog.GetItem(ctx, query.ItemID)
	if err != nil {
		return GetItemResult{}, err
	}
	return GetItemResult{Item: item}, nil
}
