//nolint:revive // types is a standard Go package name pattern
package types

// MatchWeights holds the per-dimension weights used by the match scorer.
// Weights need not sum to 100; the scorer normalizes against the sum of
// weights of dimensions that had comparable data.
type MatchWeights struct {
	Skills            float64 `json:"skills"`
	Title             float64 `json:"title"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	Location          float64 `json:"location"`
}

// DefaultMatchWeights returns the standard weight profile (25/25/30/20).
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Skills:            25,
		Title:             25,
		YearsOfExperience: 30,
		Location:          20,
	}
}

// Equal reports whether all four weights carry the same value.
func (w MatchWeights) Equal() bool {
	return w.Skills == w.Title && w.Title == w.YearsOfExperience && w.YearsOfExperience == w.Location
}

// Valid reports whether every weight is non-negative and at least one is positive.
func (w MatchWeights) Valid() bool {
	if w.Skills < 0 || w.Title < 0 || w.YearsOfExperience < 0 || w.Location < 0 {
		return false
	}
	return w.Skills+w.Title+w.YearsOfExperience+w.Location > 0
}

// DimensionScores carries the per-dimension sub-scores of a match,
// each expressed as a percentage (0-100) of that dimension's weight.
// JSON field names are part of the public API surface.
type DimensionScores struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	YearsOfExp float64 `json:"yearsOfExp"`
	Location   float64 `json:"location"`
}

// MatchResult is the outcome of scoring one candidate against one job.
// It is computed per request and never persisted.
type MatchResult struct {
	Score            int              `json:"score"`
	RawScore         float64          `json:"rawScore"`
	TotalPossible    float64          `json:"totalPossible"`
	MatchDetails     []string         `json:"matchDetails"`
	IndividualScores *DimensionScores `json:"individualScores,omitempty"`
}

// Comparable reports whether at least one scoring dimension had data to
// compare. Entities with no comparable dimensions are excluded from
// ranked output entirely rather than listed with a zero score.
func (r *MatchResult) Comparable() bool {
	return r.TotalPossible > 0
}
