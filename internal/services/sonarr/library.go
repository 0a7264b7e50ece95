package sonarr

import (
	"context"
	"net/url"
	"strconv"

	"github.com/amaumene/seasonsync/internal/models"
	"github.com/sirupsen/logrus"
)

// HistoryPageSize bounds a single history request. History per episode is small,
// so one page of this size holds every relevant record.
const HistoryPageSize = 1000

// historyPage is the paginated envelope returned by /history
type historyPage struct {
	Page         int                    `json:"page"`
	PageSize     int                    `json:"pageSize"`
	TotalRecords int                    `json:"totalRecords"`
	Records      []models.HistoryRecord `json:"records"`
}

// ListSeries returns every series in the library
func (c *Client) ListSeries(ctx context.Context) ([]models.Series, error) {
	var series []models.Series
	if err := c.get(ctx, "list series", "series", url.Values{}, &series); err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(series)).Debug("Sonarr series listed")
	return series, nil
}

// ListEpisodes returns all episodes of a series
func (c *Client) ListEpisodes(ctx context.Context, seriesID models.SeriesID) ([]models.Episode, error) {
	params := url.Values{}
	params.Set("seriesId", seriesID.String())

	var episodes []models.Episode
	if err := c.get(ctx, "list episodes", "episode", params, &episodes); err != nil {
		return nil, err
	}

	return episodes, nil
}

// SearchReleases runs a live indexer search for an episode
func (c *Client) SearchReleases(ctx context.Context, episodeID models.EpisodeID) ([]models.Release, error) {
	params := url.Values{}
	params.Set("episodeId", episodeID.String())

	var releases []models.Release
	if err := c.get(ctx, "search releases", "release", params, &releases); err != nil {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"episode_id": episodeID,
		"count":      len(releases),
	}).Debug("Sonarr release search completed")

	return releases, nil
}

// GetHistory returns the history of an episode, newest first
func (c *Client) GetHistory(ctx context.Context, episodeID models.EpisodeID) ([]models.HistoryRecord, error) {
	params := url.Values{}
	params.Set("sortKey", "date")
	params.Set("sortDirection", "descending")
	params.Set("episodeId", episodeID.String())
	params.Set("pageSize", strconv.Itoa(HistoryPageSize))
	params.Set("page", "1")

	var page historyPage
	if err := c.get(ctx, "get history", "history", params, &page); err != nil {
		return nil, err
	}

	return page.Records, nil
}
