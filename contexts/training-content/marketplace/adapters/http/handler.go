package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "playmaker/contexts/training-content/marketplace/application"
	"playmaker/contexts/training-content/marketplace/application/commands"
	"playmaker/contexts/training-content/marketplace/application/queries"
	"playmaker/contexts/training-content/marketplace/domain/entities"
	httptransport "playmaker/contexts/training-content/marketplace/transport/http"
)

type Handler struct {
	SearchItems  queries.SearchItemsUseCase
	GetItem      queries.GetItemUseCase
	ListMyItems  queries.ListMyItemsUseCase
	PublishItem  commands.PublishItemUseCase
	DownloadItem commands.DownloadItemUseCase
	RateItem     commands.RateItemUseCase
	Logger       *slog.Logger
}

// SearchItemsHandler godoc
// @Summary Search the marketplace catalog
// @Description Filters published items by sport/type/text with a combined filter+sort selector and page/page_size pagination.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param sport query string true "Sport (exact match)"
// @Param type query string false "Item type: exercise,objective,training_plan"
// @Param filter query string false "Filter: all,official,community,popular,top_rated"
// @Param search_term query string false "Case-insensitive substring on name/description"
// @Param page query int false "1-based page"
// @Param page_size query int false "Page size (max 50)"
// @Success 200 {object} httptransport.SearchItemsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace [get]
func (h Handler) SearchItemsHandler(ctx context.Context, req httptransport.SearchItemsRequest) (httptransport.SearchItemsResponse, error) {
	result, err := h.SearchItems.Execute(ctx, queries.SearchItemsQuery{
		Sport:      req.Sport,
		Type:       req.Type,
		Filter:     req.Filter,
		SearchTerm: req.SearchTerm,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return httptransport.SearchItemsResponse{}, err
	}
	return httptransport.SearchItemsResponse{
		Items:      mapItems(result.Items),
		TotalItems: result.TotalItems,
		Page:       result.Page,
		PageSize:   result.PageSize,
	}, nil
}

// GetItemHandler godoc
// @Summary Get one marketplace item
// @Description Returns the catalog entry with its ratings.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param item_id path string true "Item id"
// @Success 200 {object} httptransport.GetItemResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/items/{item_id} [get]
func (h Handler) GetItemHandler(ctx context.Context, itemID string) (httptransport.GetItemResponse, error) {
	result, err := h.GetItem.Execute(ctx, queries.GetItemQuery{ItemID: itemID})
	if err != nil {
		return httptransport.GetItemResponse{}, err
	}
	return httptransport.GetItemResponse{
		Item: mapItemWithRatings(result.Item),
	}, nil
}

// ListMyItemsHandler godoc
// @Summary List the caller's published items
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Subscription-Id header string true "Caller subscription id"
// @Success 200 {object} httptransport.ListMyItemsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/mine [get]
func (h Handler) ListMyItemsHandler(ctx context.Context, subscriptionID string) (httptransport.ListMyItemsResponse, error) {
	result, err := h.ListMyItems.Execute(ctx, queries.ListMyItemsQuery{SubscriptionID: subscriptionID})
	if err != nil {
		return httptransport.ListMyItemsResponse{}, err
	}
	return httptransport.ListMyItemsResponse{
		Items: mapItems(result.Items),
	}, nil
}

// PublishItemHandler godoc
// @Summary Publish owned content to the marketplace
// @Description Creates a catalog entry snapshotting the source entity's name/description/sport.
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Subscription-Id header string true "Caller subscription id"
// @Param X-User-Id header string true "Caller user id"
// @Param request body httptransport.PublishItemRequest true "Publish request"
// @Success 201 {object} httptransport.PublishItemResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/publish [post]
func (h Handler) PublishItemHandler(
	ctx context.Context,
	subscriptionID string,
	userID string,
	req httptransport.PublishItemRequest,
) (httptransport.PublishItemResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("publish request received",
		"event", "http_publish_received",
		"module", "training-content/marketplace",
		"layer", "transport",
		"item_type", req.Type,
	)

	result, err := h.PublishItem.Execute(ctx, commands.PublishItemCommand{
		Type:           entities.MarketplaceItemType(req.Type),
		SourceEntityID: req.SourceEntityID,
		SubscriptionID: subscriptionID,
		UserID:         userID,
	})
	if err != nil {
		return httptransport.PublishItemResponse{}, err
	}
	return httptransport.PublishItemResponse{
		ItemID:      result.ItemID,
		PublishedAt: result.PublishedAt.Format(time.RFC3339),
	}, nil
}

// DownloadItemHandler godoc
// @Summary Download a marketplace item
// @Description Clones the cataloged entity into the caller's subscription and bumps the download counter.
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Subscription-Id header string true "Caller subscription id"
// @Param X-User-Id header string true "Caller user id"
// @Param item_id path string true "Item id"
// @Success 200 {object} httptransport.DownloadItemResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/items/{item_id}/download [post]
func (h Handler) DownloadItemHandler(
	ctx context.Context,
	subscriptionID string,
	userID string,
	itemID string,
) (httptransport.DownloadItemResponse, error) {
	result, err := h.DownloadItem.Execute(ctx, commands.DownloadItemCommand{
		ItemID:         itemID,
		SubscriptionID: subscriptionID,
		UserID:         userID,
	})
	if err != nil {
		return httptransport.DownloadItemResponse{}, err
	}
	return httptransport.DownloadItemResponse{
		ItemID:   result.ItemID,
		EntityID: result.EntityID,
	}, nil
}

// RateItemHandler godoc
// @Summary Rate a marketplace item
// @Description Upserts the caller's 1-5 star rating; a repeat rating replaces the previous one.
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Subscription-Id header string true "Caller subscription id"
// @Param item_id path string true "Item id"
// @Param request body httptransport.RateItemRequest true "Rating"
// @Success 204 "rating applied"
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/items/{item_id}/rate [post]
func (h Handler) RateItemHandler(
	ctx context.Context,
	subscriptionID string,
	itemID string,
	req httptransport.RateItemRequest,
) error {
	_, err := h.RateItem.Execute(ctx, commands.RateItemCommand{
		ItemID:         itemID,
		SubscriptionID: subscriptionID,
		Stars:          req.Stars,
		Comment:        req.Comment,
	})
	return err
}

func mapItems(items []entities.MarketplaceItem) []httptransport.ItemDTO {
	result := make([]httptransport.ItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapItem(item))
	}
	return result
}

func mapItem(item entities.MarketplaceItem) httptransport.ItemDTO {
	return httptransport.ItemDTO{
		ItemID:                    item.ItemID,
		Type:                      string(item.Type),
		Sport:                     item.Sport,
		SourceEntityID:            item.SourceEntityID,
		PublishedBySubscriptionID: item.PublishedBySubscriptionID,
		PublishedAt:               item.PublishedAt.Format(time.RFC3339),
		Name:                      item.Name,
		Description:               item.Description,
		IsSystemOfficial:          item.IsSystemOfficial,
		TotalDownloads:            item.TotalDownloads,
		AverageRating:             item.AverageRating,
		TotalRatings:              item.TotalRatings,
	}
}

func mapItemWithRatings(item entities.MarketplaceItem) httptransport.ItemDTO {
	dto := mapItem(item)
	for _, rating := range item.Ratings {
		dto.Ratings = append(dto.Ratings, httptransport.RatingDTO{
			RaterSubscriptionID: rating.RaterSubscriptionID,
			Stars:               rating.Stars,
			Comment:             rating.Comment,
			UpdatedAt:           rating.UpdatedAt.Format(time.RFC3339),
		})
	}
	return dto
}
