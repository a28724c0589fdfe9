package videos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewFeedClient(t *testing.T) {
	if _, err := NewFeedClient(""); !errors.Is(err, ErrMissingFeedURL) {
		t.Fatalf("expected ErrMissingFeedURL, got %v", err)
	}
}

func TestFeedClient_FetchVideos(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"4_Br5B62-YI","title":"Enclosure build","thumbnail_url":"https://img.youtube.com/vi/4_Br5B62-YI/hqdefault.jpg"}]`))
		}))
		defer srv.Close()

		client, err := NewFeedClient(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		videos, err := client.FetchVideos(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(videos) != 1 || videos[0].ID != "4_Br5B62-YI" {
			t.Fatalf("unexpected videos: %+v", videos)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client, _ := NewFeedClient(srv.URL)
		if _, err := client.FetchVideos(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"a list"}`))
		}))
		defer srv.Close()

		client, _ := NewFeedClient(srv.URL)
		if _, err := client.FetchVideos(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
