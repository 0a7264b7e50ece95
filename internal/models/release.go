package models

import (
	"fmt"
	"time"
)

// Release represents a candidate returned by a live release search
type Release struct {
	GUID        string    `json:"guid"`
	Title       string    `json:"title"`
	DownloadURL string    `json:"downloadUrl"`
	PublishDate time.Time `json:"publishDate"`
}

// HistoryRecord is a single history event for an episode
type HistoryRecord struct {
	EventType EventType         `json:"eventType"`
	Date      time.Time         `json:"date"`
	Data      map[string]string `json:"data"`
}

// GUID returns the release identifier stored in the event data, if any
func (r HistoryRecord) GUID() string {
	return r.Data["guid"]
}

// PublishedDate returns the publish timestamp stored in the event data.
// ok is false when the value is missing or unparsable.
func (r HistoryRecord) PublishedDate() (time.Time, bool) {
	raw := r.Data["publishedDate"]
	if raw == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Grabbed extracts the grab fact from the record.
// Returns (nil, nil) for events that are not grabs.
func (r HistoryRecord) Grabbed() (*Grabbed, error) {
	if r.EventType != EventGrabbed {
		return nil, nil
	}

	guid := r.GUID()
	if guid == "" {
		return nil, fmt.Errorf("%w: grabbed event at %s has no guid", ErrMalformedHistory, r.Date.Format(time.RFC3339))
	}

	return &Grabbed{GUID: guid}, nil
}

// Grabbed is the most recent grab recorded for an episode
type Grabbed struct {
	GUID string
}
