package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEpisodesForSeason means the series has no episode with the requested season number
	ErrNoEpisodesForSeason = errors.New("no episodes for season")

	// ErrNoGrabHistory means no release was ever grabbed for the season; callers skip silently
	ErrNoGrabHistory = errors.New("no grab history")

	// ErrMalformedHistory means a grab event is missing its release GUID
	ErrMalformedHistory = errors.New("malformed history")
)

// UpstreamError reports a transport, status or decoding failure from a collaborator
type UpstreamError struct {
	Service    string // "sonarr" or "qbittorrent"
	Op         string
	StatusCode int    // 0 when no response was received
	Body       string // response body for unexpected statuses
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Service, e.Op, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
	default:
		return fmt.Sprintf("%s %s failed", e.Service, e.Op)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstream reports whether err originates from a collaborator
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
