package entities

import "time"

type MarketplaceItemType string

const (
	ItemTypeExercise     MarketplaceItemType = "exercise"
	ItemTypeObjective    MarketplaceItemType = "objective"
	ItemTypeTrainingPlan MarketplaceItemType = "training_plan"
)

func (t MarketplaceItemType) Valid() bool {
	switch t {
	case ItemTypeExercise, ItemTypeObjective, ItemTypeTrainingPlan:
		return true
	default:
		return false
	}
}

// MarketplaceFilter is a combined filter+sort selector for catalog
// searches.
type MarketplaceFilter string

const (
	FilterAll       MarketplaceFilter = "all"
	FilterOfficial  MarketplaceFilter = "official"
	FilterCommunity MarketplaceFilter = "community"
	FilterPopular   MarketplaceFilter = "popular"
	FilterTopRated  MarketplaceFilter = "top_rated"
)

func (f MarketplaceFilter) Valid() bool {
	switch f {
	case FilterAll, FilterOfficial, FilterCommunity, FilterPopular, FilterTopRated:
		return true
	default:
		return false
	}
}

// Rating is one subscription's star rating of a catalog item. At most
// one rating exists per (item, rater) pair; a repeat rating updates
// the existing row in place.
type Rating struct {
	RatingID            string
	ItemID              string
	RaterSubscriptionID string
	Stars               int
	Comment             string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MarketplaceItem is the published catalog entry. Name/Description are
// snapshotted at publish time and never re-synced to the source
// entity. Aggregates (TotalDownloads, AverageRating, TotalRatings) are
// maintained by the download/rating write paths.
type MarketplaceItem struct {
	ItemID                    string
	Type                      MarketplaceItemType
	Sport                     string
	SourceEntityID            string
	PublishedBySubscriptionID string
	PublishedByUserID         string
	PublishedAt               time.Time
	Name                      string
	Description               string
	IsSystemOfficial          bool
	TotalDownloads            int
	Ratings                   []Rating
	AverageRating             float64
	TotalRatings              int
	UpdatedAt                 time.Time
}
