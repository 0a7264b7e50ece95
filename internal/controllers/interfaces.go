package controllers

import (
	"context"

	"github.com/amaumene/seasonsync/internal/models"
)

// LibraryClient is the read-only view of the library manager used by the reconciler
type LibraryClient interface {
	ListSeries(ctx context.Context) ([]models.Series, error)
	ListEpisodes(ctx context.Context, seriesID models.SeriesID) ([]models.Episode, error)
	SearchReleases(ctx context.Context, episodeID models.EpisodeID) ([]models.Release, error)
	GetHistory(ctx context.Context, episodeID models.EpisodeID) ([]models.HistoryRecord, error)
}

// Submitter hands a release to the download client
type Submitter interface {
	Submit(ctx context.Context, url string, category string) error
}

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_interfaces.go github.com/amaumene/seasonsync/internal/controllers LibraryClient,Submitter
