package utils

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

// IgnoreList holds series titles that are never reconciled
type IgnoreList struct {
	titles map[string]string // folded -> as written
}

// foldTitle normalizes a title for comparison. Casers keep state, so one is built per call.
func foldTitle(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// NewIgnoreList builds an ignore list from titles
func NewIgnoreList(titles ...string) *IgnoreList {
	l := &IgnoreList{titles: make(map[string]string, len(titles))}
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		l.titles[foldTitle(title)] = title
	}
	return l
}

// LoadIgnoreList loads series titles from a file, one per line.
// An empty path or a missing file yields an empty list.
func LoadIgnoreList(path string) (*IgnoreList, error) {
	if path == "" {
		return NewIgnoreList(), nil
	}

	// If file doesn't exist, return empty list
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewIgnoreList(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var titles []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		title := strings.TrimSpace(scanner.Text())
		if title != "" && !strings.HasPrefix(title, "#") {
			titles = append(titles, title)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewIgnoreList(titles...), nil
}

// IsIgnored checks if a series title is on the list, ignoring case
func (l *IgnoreList) IsIgnored(title string) bool {
	if l == nil || len(l.titles) == 0 {
		return false
	}
	_, ok := l.titles[foldTitle(title)]
	return ok
}

// Len returns the number of titles on the list
func (l *IgnoreList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.titles)
}
