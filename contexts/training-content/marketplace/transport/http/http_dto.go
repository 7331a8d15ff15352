package httptransport

type SearchItemsRequest struct {
	Sport      string `json:"sport,omitempty"`
	Type       string `json:"type,omitempty"`
	Filter     string `json:"filter,omitempty"`
	SearchTerm string `json:"search_term,omitempty"`
	Page       int    `json:"page,omitempty"`
	PageSize   int    `json:"page_size,omitempty"`
}

type RatingDTO struct {
	RaterSubscriptionID string `json:"rater_subscription_id"`
	Stars               int    `json:"stars"`
	Comment             string `json:"comment,omitempty"`
	UpdatedAt           string `json:"updated_at"`
}

type ItemDTO struct {
	ItemID                    string      `json:"item_id"`
	Type                      string      `json:"type"`
	Sport                     string      `json:"sport"`
	SourceEntityID            string      `json:"source_entity_id"`
	PublishedBySubscriptionID string      `json:"published_by_subscription_id"`
	PublishedAt               string      `json:"published_at"`
	Name                      string      `json:"name"`
	Description               string      `json:"description,omitempty"`
	IsSystemOfficial          bool        `json:"is_system_official"`
	TotalDownloads            int         `json:"total_downloads"`
	AverageRating             float64     `json:"average_rating"`
	TotalRatings              int         `json:"total_ratings"`
	Ratings                   []RatingDTO `json:"ratings,omitempty"`
}

type SearchItemsResponse struct {
	Items      []ItemDTO `json:"items"`
	TotalItems int       `json:"total_items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

type GetItemResponse struct {
	Item ItemDTO `json:"item"`
}

type ListMyItemsResponse struct {
	Items []ItemDTO `json:"items"`
}

type PublishItemRequest struct {
	Type           string `json:"type"`
	SourceEntityID string `json:"source_entity_id"`
}

type PublishItemResponse struct {
	ItemID      string `json:"item_id"`
	PublishedAt string `json:"published_at"`
}

type DownloadItemResponse struct {
	ItemID   string `json:"item_id"`
	EntityID string `json:"entity_id"`
}

type RateItemRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
