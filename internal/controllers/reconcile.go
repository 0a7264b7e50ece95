package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amaumene/seasonsync/internal/metrics"
	"github.com/amaumene/seasonsync/internal/models"
	"github.com/amaumene/seasonsync/internal/utils"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrSubmission aborts the remainder of a pass
var ErrSubmission = errors.New("submission failed")

// PassSummary describes one reconciliation pass
type PassSummary struct {
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	Series         int       `json:"series"`
	SeasonsChecked int       `json:"seasons_checked"`
	Resolved       int       `json:"resolved"`
	Submitted      int       `json:"submitted"`
	Stale          int       `json:"stale"`
	Skipped        int       `json:"skipped"`
	Ignored        int       `json:"ignored"`
	Errors         int       `json:"errors"`
	Error          string    `json:"error,omitempty"`
}

// ReconcilerOptions carries the tunables of a pass
type ReconcilerOptions struct {
	Category      string
	MaxReleaseAge time.Duration
}

// Reconciler walks the library once per pass and submits still-offered grabs
type Reconciler struct {
	library   LibraryClient
	resolver  *Resolver
	submitter Submitter
	skip      *SkipSet
	ignore    *utils.IgnoreList
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	logger    *logrus.Logger
	opts      ReconcilerOptions
	now       func() time.Time

	mu      sync.RWMutex
	last    PassSummary
	hasLast bool
}

// NewReconciler creates a new reconciler. skip and ignore may be nil.
func NewReconciler(
	opts ReconcilerOptions,
	library LibraryClient,
	resolver *Resolver,
	submitter Submitter,
	skip *SkipSet,
	ignore *utils.IgnoreList,
	m *metrics.Metrics,
	tracer trace.Tracer,
	logger *logrus.Logger,
) *Reconciler {
	return &Reconciler{
		library:   library,
		resolver:  resolver,
		submitter: submitter,
		skip:      skip,
		ignore:    ignore,
		metrics:   m,
		tracer:    tracer,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// IsFresh reports whether a release is still inside the freshness window.
// A release published exactly maxAge ago is stale.
func IsFresh(release models.Release, maxAge time.Duration, now time.Time) bool {
	return now.Before(release.PublishDate.Add(maxAge))
}

// Run performs one reconciliation pass. Resolution errors are logged and the
// pass moves on; a submission failure stops the pass and is returned.
func (r *Reconciler) Run(ctx context.Context) (err error) {
	summary := PassSummary{StartedAt: r.now()}

	ctx, span := r.tracer.Start(ctx, "reconcile")
	r.logger.Info("Starting reconciliation pass")

	defer func() {
		summary.FinishedAt = r.now()
		r.finish(&summary, err)

		span.SetAttributes(
			attribute.Int("series", summary.Series),
			attribute.Int("submitted", summary.Submitted),
		)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	series, err := r.library.ListSeries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list series: %w", err)
	}
	summary.Series = len(series)

	for _, s := range series {
		if err := r.reconcileSeries(ctx, s, &summary); err != nil {
			return err
		}
	}

	return nil
}

// LastRun returns the summary of the most recent pass, if any
func (r *Reconciler) LastRun() (PassSummary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last, r.hasLast
}

// SkipSetSize returns the number of series currently skipped
func (r *Reconciler) SkipSetSize() int {
	return r.skip.Len()
}

func (r *Reconciler) reconcileSeries(ctx context.Context, series models.Series, summary *PassSummary) error {
	log := r.logger.WithFields(logrus.Fields{
		"series_id":    series.ID,
		"series_title": series.Title,
	})

	if r.ignore.IsIgnored(series.Title) {
		log.Debug("Series is ignored")
		summary.Ignored++
		return nil
	}

	if r.skip.ShouldSkip(series.ID) {
		log.Debug("Series is in the skip-set")
		summary.Skipped++
		r.metrics.SkippedSeries.Inc()
		return nil
	}

	for _, season := range series.Seasons {
		if !season.NeedsUpdate() {
			continue
		}
		summary.SeasonsChecked++

		seasonLog := log.WithField("season", season.SeasonNumber)

		release, err := r.resolver.Resolve(ctx, series, season)
		outcome := Outcome(release, err)
		r.metrics.Resolutions.WithLabelValues(string(outcome)).Inc()

		switch outcome {
		case models.OutcomeNoGrab:
			seasonLog.Debug("Season has no grab history")
			continue
		case models.OutcomeMalformed:
			seasonLog.WithError(err).Warn("Malformed grab history, check the Sonarr API version")
			summary.Errors++
			continue
		case models.OutcomeNoEpisodes, models.OutcomeError:
			seasonLog.WithError(err).Error("Failed to resolve release")
			summary.Errors++
			continue
		case models.OutcomeNone:
			seasonLog.Info("Grabbed release is no longer offered")
			continue
		}

		summary.Resolved++
		releaseLog := seasonLog.WithFields(logrus.Fields{
			"guid":         release.GUID,
			"title":        release.Title,
			"publish_date": release.PublishDate,
		})

		if !IsFresh(*release, r.opts.MaxReleaseAge, r.now()) {
			releaseLog.Info("Release is older than the freshness window, not submitting")
			summary.Stale++
			r.metrics.StaleReleases.Inc()
			continue
		}

		if err := r.submit(ctx, release); err != nil {
			releaseLog.WithError(err).Error("Failed to submit release")
			return fmt.Errorf("%w: series %d season %d: %w", ErrSubmission, series.ID, season.SeasonNumber, err)
		}

		releaseLog.Info("Release submitted")
		summary.Submitted++
		r.skip.Mark(series.ID)
	}

	return nil
}

func (r *Reconciler) submit(ctx context.Context, release *models.Release) (err error) {
	ctx, span := r.tracer.Start(ctx, "submit", trace.WithAttributes(
		attribute.String("guid", release.GUID),
		attribute.String("category", r.opts.Category),
	))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			r.metrics.Submissions.WithLabelValues("failure").Inc()
		} else {
			r.metrics.Submissions.WithLabelValues("success").Inc()
		}
		span.End()
	}()

	return r.submitter.Submit(ctx, release.DownloadURL, r.opts.Category)
}

// finish records the pass and resets the skip-set when its window has elapsed
func (r *Reconciler) finish(summary *PassSummary, err error) {
	result := "completed"
	switch {
	case errors.Is(err, ErrSubmission):
		result = "aborted"
	case err != nil:
		result = "failed"
	}
	if err != nil {
		summary.Error = err.Error()
	}

	duration := summary.FinishedAt.Sub(summary.StartedAt)
	r.metrics.Passes.WithLabelValues(result).Inc()
	r.metrics.PassDuration.Observe(duration.Seconds())

	if r.skip.MaybeReset(summary.FinishedAt) {
		r.logger.Info("Skip-set window elapsed, cleared")
		r.metrics.SkipResets.Inc()
	}
	r.metrics.SkipSetSize.Set(float64(r.skip.Len()))

	r.logger.WithFields(logrus.Fields{
		"result":          result,
		"series":          summary.Series,
		"seasons_checked": summary.SeasonsChecked,
		"resolved":        summary.Resolved,
		"submitted":       summary.Submitted,
		"stale":           summary.Stale,
		"skipped":         summary.Skipped,
		"errors":          summary.Errors,
		"duration":        duration,
	}).Info("Reconciliation pass finished")

	r.mu.Lock()
	r.last = *summary
	r.hasLast = true
	r.mu.Unlock()
}
