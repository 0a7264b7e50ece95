package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaumene/seasonsync/internal/models"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Resolver determines which grabbed release of a season is still offered
type Resolver struct {
	library LibraryClient
	tracer  trace.Tracer
	logger  *logrus.Logger
}

// NewResolver creates a new resolver
func NewResolver(library LibraryClient, tracer trace.Tracer, logger *logrus.Logger) *Resolver {
	return &Resolver{
		library: library,
		tracer:  tracer,
		logger:  logger,
	}
}

// Resolve returns the live release matching the newest grab of the season's first episode.
// It returns (nil, nil) when the grabbed release is no longer offered by the search.
func (r *Resolver) Resolve(ctx context.Context, series models.Series, season models.Season) (release *models.Release, err error) {
	ctx, span := r.tracer.Start(ctx, "resolve", trace.WithAttributes(
		attribute.Int("series_id", int(series.ID)),
		attribute.String("series_title", series.Title),
		attribute.Int("season", season.SeasonNumber),
	))
	defer func() {
		outcome := Outcome(release, err)
		span.SetAttributes(attribute.String("outcome", string(outcome)))
		if outcome == models.OutcomeError || outcome == models.OutcomeMalformed {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	episodes, err := r.library.ListEpisodes(ctx, series.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	first, ok := models.FirstEpisode(episodes, season.SeasonNumber)
	if !ok {
		return nil, fmt.Errorf("%w: series %d season %d", models.ErrNoEpisodesForSeason, series.ID, season.SeasonNumber)
	}

	history, err := r.library.GetHistory(ctx, first.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	grabbed, err := latestGrab(history)
	if err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"series_id":  series.ID,
		"season":     season.SeasonNumber,
		"episode_id": first.ID,
		"guid":       grabbed.GUID,
	}).Debug("Found grabbed release, searching for it")

	releases, err := r.library.SearchReleases(ctx, first.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to search releases: %w", err)
	}

	for i := range releases {
		if releases[i].GUID == grabbed.GUID {
			return &releases[i], nil
		}
	}

	return nil, nil
}

// latestGrab returns the first grab in a newest-first history
func latestGrab(history []models.HistoryRecord) (*models.Grabbed, error) {
	for _, record := range history {
		grabbed, err := record.Grabbed()
		if err != nil {
			return nil, err
		}
		if grabbed != nil {
			return grabbed, nil
		}
	}
	return nil, models.ErrNoGrabHistory
}

// Outcome classifies the result of a resolution
func Outcome(release *models.Release, err error) models.ResolutionOutcome {
	switch {
	case err == nil && release != nil:
		return models.OutcomeFound
	case err == nil:
		return models.OutcomeNone
	case errors.Is(err, models.ErrNoGrabHistory):
		return models.OutcomeNoGrab
	case errors.Is(err, models.ErrMalformedHistory):
		return models.OutcomeMalformed
	case errors.Is(err, models.ErrNoEpisodesForSeason):
		return models.OutcomeNoEpisodes
	default:
		return models.OutcomeError
	}
}
