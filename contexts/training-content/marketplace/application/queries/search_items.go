package queries

import (
	"context"
	"log/slog"
	"strings"

	application "playmaker/contexts/training-content/marketplace/application"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	domainerrors "playmaker/contexts/training-content/marketplace/domain/errors"
	"playmaker/contexts/training-content/marketplace/ports"
)

type SearchItemsQuery struct {
	Sport      string
	Type       string
	Filter     string
	SearchTerm string
	Page       int
	PageSize   int
}

type SearchItemsResult struct {
	Items      []entities.MarketplaceItem
	TotalItems int
	Page       int
	PageSize   int
}

// SearchItemsUseCase filters the catalog by sport/kind/text and orders
// per the combined filter selector. TotalItems is computed with the
// identical predicate so caller-side page math is exact.
type SearchItemsUseCase struct {
	Catalog ports.CatalogRepository
	Logger  *slog.Logger
}

func (u SearchItemsUseCase) Execute(ctx context.Context, query SearchItemsQuery) (SearchItemsResult, error) {
	logger := application.ResolveLogger(u.Logger)

	sport := strings.TrimSpace(query.Sport)
	if sport == "" {
		return SearchItemsResult{}, domainerrors.ErrInvalidSearchFilter
	}

	filter := entities.MarketplaceFilter(query.Filter)
	if filter == "" {
		filter = entities.FilterAll
	}
	if !filter.Valid() {
		return SearchItemsResult{}, domainerrors.ErrInvalidSearchFilter
	}

	itemType := entities.MarketplaceItemType(query.Type)
	if itemType != "" && !itemType.Valid() {
		return SearchItemsResult{}, domainerrors.ErrInvalidSearchFilter
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 50 {
		pageSize = 50
	}

	searchFilter := ports.ItemSearchFilter{
		Sport:      sport,
		Type:       itemType,
		Filter:     filter,
		SearchTerm: strings.TrimSpace(query.SearchTerm),
		Page:       page,
		PageSize:   pageSize,
	}

	items, err := u.Catalog.SearchItems(ctx, searchFilter)
	if err != nil {
		logger.Error("marketplace search failed",
			"event", "marketplace_search_failed",
			"module", "training-content/marketplace",
			"layer", "application",
			"error", err.Error(),
		)
		return SearchItemsResult{}, err
	}
	total, err := u.Catalog.CountItems(ctx, searchFilter)
	if err != nil {
		return SearchItemsResult{}, err
	}

	logger.Info("marketplace search completed",
		"event", "marketplace_search_completed",
		"module", "training-content/marketplace",
		"layer", "application",
		"sport", sport,
		"filter", string(filter),
		"items_count", len(items),
		"total_items", total,
	)

	return SearchItemsResult{
		Items:      items,
		TotalItems: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
