package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"game_collector/internal/domain"
	"game_collector/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestBoardResolver_BatchSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockBatchTagFetcher(ctrl)
	resolver := NewBoardResolver(fetcher, testLogger())

	ctx := context.Background()
	misses := []domain.Game{
		{ID: "102", Source: domain.SourceBoard},
		{ID: "101", Source: domain.SourceBoard},
	}

	fetcher.EXPECT().FetchTags(ctx, []string{"102", "101"}).Return(
		map[string][]string{"102": {"Sci-Fi", "Dice"}}, nil,
	)

	entries := resolver.Resolve(ctx, misses)

	assert.Equal(t, map[string][]string{"bgg:102": {"Sci-Fi", "Dice"}}, entries)
}

func TestBoardResolver_BatchFailure_ResolvesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockBatchTagFetcher(ctrl)
	resolver := NewBoardResolver(fetcher, testLogger())

	ctx := context.Background()
	misses := []domain.Game{
		{ID: "101"},
		{ID: "102"},
	}

	fetcher.EXPECT().FetchTags(ctx, gomock.Any()).Return(nil, errors.New("status 503"))

	entries := resolver.Resolve(ctx, misses)

	assert.Empty(t, entries)
}

func TestDigitalResolver_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockGenreFetcher(ctrl)
	resolver := NewDigitalResolver(fetcher, testLogger())

	ctx := context.Background()
	misses := []domain.Game{
		{ID: "2", Source: domain.SourceDigital},
		{ID: "3", Source: domain.SourceDigital},
	}

	fetcher.EXPECT().FetchGenres(ctx, "2").Return([]string{"Strategy"}, nil)
	fetcher.EXPECT().FetchGenres(ctx, "3").Return([]string{"Action", "RPG"}, nil)

	entries := resolver.Resolve(ctx, misses)

	assert.Equal(t, map[string][]string{
		"steam:2": {"Strategy"},
		"steam:3": {"Action", "RPG"},
	}, entries)
}

func TestDigitalResolver_OneFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockGenreFetcher(ctrl)
	resolver := NewDigitalResolver(fetcher, testLogger())

	ctx := context.Background()
	misses := []domain.Game{
		{ID: "1"},
		{ID: "2"},
		{ID: "3"},
	}

	fetcher.EXPECT().FetchGenres(ctx, "1").Return([]string{"Indie"}, nil)
	fetcher.EXPECT().FetchGenres(ctx, "2").Return(nil, errors.New("status 500"))
	fetcher.EXPECT().FetchGenres(ctx, "3").Return([]string{"Racing"}, nil)

	entries := resolver.Resolve(ctx, misses)

	// The failed app is left out entirely so it stays a miss next pass.
	assert.Equal(t, map[string][]string{
		"steam:1": {"Indie"},
		"steam:3": {"Racing"},
	}, entries)
}

func TestDigitalResolver_EmptyGenresStillCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockGenreFetcher(ctrl)
	resolver := NewDigitalResolver(fetcher, testLogger())

	ctx := context.Background()
	misses := []domain.Game{{ID: "7"}}

	fetcher.EXPECT().FetchGenres(ctx, "7").Return([]string{}, nil)

	entries := resolver.Resolve(ctx, misses)

	tags, ok := entries["steam:7"]
	assert.True(t, ok)
	assert.Empty(t, tags)
}
