package catalog

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Run is one recorded assembly run.
type Run struct {
	ID             int64
	JobID          string
	Title          string
	ProjectPath    string
	MixRequestPath string
	TotalDuration  float64
	Valid          bool
	ErrorCount     int
	WarningCount   int
	CreatedAt      time.Time
}

var titleCaser = cases.Title(language.English)

// DisplayTitle returns the recorded script title, or a humanized form of the
// job identifier when the script had none.
func (r Run) DisplayTitle() string {
	if title := strings.TrimSpace(r.Title); title != "" && title != "Untitled Project" {
		return title
	}
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(r.JobID))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "Untitled Project"
	}
	return titleCaser.String(cleaned)
}
