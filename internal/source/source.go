package source

import (
	"context"

	"skillmatch/internal/domain/skill"
)

// Query is what the aggregator hands every job source: the caller's
// skill names plus optional role and location hints.
type Query struct {
	Skills   []string
	Title    string
	Location string
}

// Requirement is a skill a candidate job demands. Sources that do not
// grade importance leave it to ParseImportance's optional default.
type Requirement struct {
	Name       string
	Importance skill.Importance
}

// Job is a candidate job as returned by a source, before scoring.
type Job struct {
	Title           string
	Company         string
	Location        string
	Description     string
	ApplicationLink string
	Platform        string
	RequiredSkills  []Requirement
}

// JobSource is the pluggable collaborator boundary. A source that fails
// or times out is treated by the aggregator exactly like a source that
// returned no jobs.
type JobSource interface {
	Name() string
	Search(ctx context.Context, q Query) ([]Job, error)
}
