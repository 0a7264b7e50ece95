package models

import "strconv"

// SeriesID identifies a series in the library manager
type SeriesID int

func (id SeriesID) String() string {
	return strconv.Itoa(int(id))
}

// EpisodeID identifies an episode in the library manager
type EpisodeID int

func (id EpisodeID) String() string {
	return strconv.Itoa(int(id))
}

// EventType is the free-form history event type reported by the library manager
type EventType string

const (
	// EventGrabbed is the only event type the resolver acts on
	EventGrabbed EventType = "grabbed"
)

// CompletePercent is the completion level at which a season needs nothing more
const CompletePercent = 100.0

// ResolutionOutcome classifies the result of resolving one season
type ResolutionOutcome string

const (
	OutcomeFound      ResolutionOutcome = "found"       // Grabbed release is still offered
	OutcomeNone       ResolutionOutcome = "none"        // Grabbed release disappeared from search
	OutcomeNoGrab     ResolutionOutcome = "no_grab"     // Season never grabbed
	OutcomeMalformed  ResolutionOutcome = "malformed"   // Grab record without GUID
	OutcomeNoEpisodes ResolutionOutcome = "no_episodes" // No episode carries the season number
	OutcomeError      ResolutionOutcome = "error"       // Upstream failure
)
