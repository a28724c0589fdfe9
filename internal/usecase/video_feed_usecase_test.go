package usecase

import (
	"context"
	"errors"
	"testing"

	"diamond_exteriors/internal/domain/entities"
	mock_interfaces "diamond_exteriors/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVideoFeedUseCase(t *testing.T) {
	t.Run("nil gateway stays disabled", func(t *testing.T) {
		uc := NewVideoFeedUseCase(nil)
		uc.FetchOnce(context.Background())

		feed := uc.Feed()
		if feed.Status != FeedStatusDisabled {
			t.Fatalf("expected disabled, got %s", feed.Status)
		}
	})

	t.Run("successful fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIVideoFeedGateway(ctrl)
		uc := NewVideoFeedUseCase(gw)

		gw.EXPECT().FetchVideos(gomock.Any()).Return([]entities.YouTubeVideo{
			{ID: "4_Br5B62-YI", Title: "Enclosure build"},
		}, nil)

		uc.FetchOnce(context.Background())
		feed := uc.Feed()
		if feed.Status != FeedStatusOK {
			t.Fatalf("expected ok, got %s", feed.Status)
		}
		if len(feed.Videos) != 1 || feed.Videos[0].ID != "4_Br5B62-YI" {
			t.Fatalf("unexpected videos: %+v", feed.Videos)
		}
	})

	t.Run("failure is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIVideoFeedGateway(ctrl)
		uc := NewVideoFeedUseCase(gw)

		gw.EXPECT().FetchVideos(gomock.Any()).Return(nil, errors.New("upstream down"))

		uc.FetchOnce(context.Background())
		if feed := uc.Feed(); feed.Status != FeedStatusError {
			t.Fatalf("expected error state, got %s", feed.Status)
		}

		// A later call must not retry: the single expected gateway call above
		// would fail the controller if it fired again.
		uc.FetchOnce(context.Background())
		if feed := uc.Feed(); feed.Status != FeedStatusError {
			t.Fatalf("expected error state to persist, got %s", feed.Status)
		}
	})
}
