package models

// Series represents a tracked show as returned by the library manager
type Series struct {
	ID      SeriesID `json:"id"`
	Title   string   `json:"title"`
	Seasons []Season `json:"seasons"`
}

// Season is a numbered grouping of episodes within a series
type Season struct {
	SeasonNumber int              `json:"seasonNumber"`
	Monitored    bool             `json:"monitored"`
	Statistics   SeasonStatistics `json:"statistics"`
}

// SeasonStatistics holds the completion figures of a season
type SeasonStatistics struct {
	PercentOfEpisodes float64 `json:"percentOfEpisodes"` // 0.0 - 100.0
}

// NeedsUpdate reports whether the season is wanted and still incomplete
func (s Season) NeedsUpdate() bool {
	return s.Monitored && s.Statistics.PercentOfEpisodes < CompletePercent
}

// Episode represents a single episode of a series
type Episode struct {
	ID            EpisodeID `json:"id"`
	SeriesID      SeriesID  `json:"seriesId"`
	SeasonNumber  int       `json:"seasonNumber"`
	EpisodeNumber int       `json:"episodeNumber"`
}

// FirstEpisode returns the episode with the lowest episode number in the given season.
// It stands in for the whole season in history and release lookups.
func FirstEpisode(episodes []Episode, seasonNumber int) (Episode, bool) {
	var first Episode
	found := false

	for _, ep := range episodes {
		if ep.SeasonNumber != seasonNumber {
			continue
		}
		if !found || ep.EpisodeNumber < first.EpisodeNumber {
			first = ep
			found = true
		}
	}

	return first, found
}
