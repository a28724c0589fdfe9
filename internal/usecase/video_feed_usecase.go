package usecase

import (
	"context"
	"log"
	"sync"

	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/usecase/interfaces"
)

// Feed states reported alongside the video list.
const (
	FeedStatusDisabled = "disabled"
	FeedStatusOK       = "ok"
	FeedStatusError    = "error"
)

// VideoFeed carries the fetched list and the state of the one fetch attempt.
// Videos is nil unless Status is ok.
type VideoFeed struct {
	Status string                  `json:"status"`
	Videos []entities.YouTubeVideo `json:"videos,omitempty"`
}

// VideoFeedUseCase wraps the optional external video feed. The gateway is
// consulted exactly once; a failed fetch is a terminal error state, the
// curated collection stays authoritative either way.
type VideoFeedUseCase struct {
	gateway interfaces.IVideoFeedGateway

	mu      sync.Mutex
	fetched bool
	feed    VideoFeed
}

// NewVideoFeedUseCase accepts a nil gateway, which leaves the feed disabled.
func NewVideoFeedUseCase(gateway interfaces.IVideoFeedGateway) *VideoFeedUseCase {
	return &VideoFeedUseCase{gateway: gateway, feed: VideoFeed{Status: FeedStatusDisabled}}
}

// FetchOnce performs the single fetch attempt. Later calls are no-ops.
func (u *VideoFeedUseCase) FetchOnce(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.gateway == nil || u.fetched {
		return
	}
	u.fetched = true

	videos, err := u.gateway.FetchVideos(ctx)
	if err != nil {
		log.Printf("[videos] feed fetch failed: %v", err)
		u.feed = VideoFeed{Status: FeedStatusError}
		return
	}
	u.feed = VideoFeed{Status: FeedStatusOK, Videos: videos}
}

func (u *VideoFeedUseCase) Feed() VideoFeed {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.feed
}
