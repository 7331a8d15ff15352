package errors

import "errors"

var (
	ErrMissingCaller            = errors.New("caller subscription is required")
	ErrNotContentOwner          = errors.New("content is owned by another subscription")
	ErrItemNotFound             = errors.New("marketplace item not found")
	ErrContentNotFound          = errors.New("source content not found")
	ErrInvalidStars             = errors.New("stars must be between 1 and 5")
	ErrInvalidSearchFilter      = errors.New("invalid search filter")
	ErrInvalidPublishRequest    = errors.New("invalid publish request")
	ErrUnsupportedKind          = errors.New("unsupported content kind")
	ErrRepositoryInvariantBroke = errors.New("repository invariant violated")
)
