package videos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"diamond_exteriors/internal/domain/entities"
	"diamond_exteriors/internal/usecase/interfaces"
)

var ErrMissingFeedURL = errors.New("missing VIDEO_FEED_URL")

const defaultTimeout = 10 * time.Second

// FeedClient fetches the external video aggregation feed: a JSON array of
// {id, title, thumbnail_url} objects. Read-only, consulted once at startup.
type FeedClient struct {
	url    string
	client *http.Client
}

var _ interfaces.IVideoFeedGateway = (*FeedClient)(nil)

func NewFeedClient(url string) (*FeedClient, error) {
	if url == "" {
		log.Printf("[videos][feed] missing VIDEO_FEED_URL")
		return nil, ErrMissingFeedURL
	}
	log.Printf("[videos][feed] client initialized url=%s", url)
	return &FeedClient{url: url, client: &http.Client{Timeout: defaultTimeout}}, nil
}

func (c *FeedClient) FetchVideos(ctx context.Context) ([]entities.YouTubeVideo, error) {
	log.Printf("[videos][feed] fetch start")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		log.Printf("[videos][feed] build request failed err=%v", err)
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[videos][feed] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[videos][feed] unexpected status=%d", resp.StatusCode)
		return nil, fmt.Errorf("video feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[videos][feed] read body failed err=%v", err)
		return nil, err
	}

	var videos []entities.YouTubeVideo
	if err := json.Unmarshal(body, &videos); err != nil {
		log.Printf("[videos][feed] decode failed err=%v", err)
		return nil, err
	}

	log.Printf("[videos][feed] fetch success count=%d", len(videos))
	return videos, nil
}
