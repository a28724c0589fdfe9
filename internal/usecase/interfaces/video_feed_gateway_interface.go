package interfaces

import (
	"context"

	"diamond_exteriors/internal/domain/entities"
)

// IVideoFeedGateway abstracts the optional read-only external video
// aggregation service. Fetched lists are non-authoritative and never
// persisted; the curated collection remains the source of truth.
type IVideoFeedGateway interface {
	FetchVideos(ctx context.Context) ([]entities.YouTubeVideo, error)
}
