package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

// Similarity thresholds per dimension. Each dimension tolerates a
// different amount of fuzz: skill names are short and precise, free
// text is noisy.
const (
	skillThreshold       = 0.7
	descriptionThreshold = 0.3
	titleThreshold       = 0.2
	locationThreshold    = 0.5
)

// Point values for the skills and title accumulators. Exact matches are
// worth more than the best possible fuzzy match so they dominate.
const (
	exactMatchPoints = 3.0
	fuzzyMatchFactor = 2.0
)

// Experience bucket cutoffs: fraction of required years -> fraction of
// the dimension weight awarded. A discrete step function on purpose;
// duration data parsed from free-text dates is too noisy for a
// continuous scale.
var experienceBuckets = []struct {
	minRatio float64
	award    float64
}{
	{1.0, 1.0},
	{0.8, 0.85},
	{0.6, 0.70},
	{0.4, 0.55},
	{0.0, 0.40},
}

// Date layouts tried, in order, when an experience boundary is not a
// bare 4-digit year.
var experienceDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	time.RFC3339,
	"01/02/2006",
}

// ScoreOptions controls a single scoring call.
type ScoreOptions struct {
	// Weights is the per-dimension weight profile. Zero-weight
	// dimensions are treated as inactive.
	Weights types.MatchWeights

	// UseMean aggregates the final score as the arithmetic mean of the
	// active dimension sub-scores instead of the weighted formula. The
	// two coincide when all weights are equal; callers set this for the
	// equal-weights profile.
	UseMean bool
}

// Score computes the weighted multi-dimensional match between one
// candidate and one job. Both arguments must be non-nil; missing
// optional fields and unparseable experience dates are treated as
// "dimension inactive" or skipped, never as errors. Dimensions with no
// data to compare contribute to neither the score nor the total
// possible, so sparse records are ranked only among comparable peers.
func Score(candidate *types.Candidate, job *types.Job, opts ScoreOptions) types.MatchResult {
	w := opts.Weights

	var (
		raw        float64
		total      float64
		details    []string
		subs       types.DimensionScores
		activeSubs []float64
	)

	if s, detail, ok := scoreSkills(candidate, job, w.Skills); ok {
		raw += s
		total += w.Skills
		subs.Skills = percent(s, w.Skills)
		activeSubs = append(activeSubs, subs.Skills)
		details = append(details, detail)
	}

	if s, detail, ok := scoreTitles(candidate, job, w.Title); ok {
		raw += s
		total += w.Title
		subs.Experience = percent(s, w.Title)
		activeSubs = append(activeSubs, subs.Experience)
		details = append(details, detail)
	}

	if s, detail, ok := scoreYears(candidate, job, w.YearsOfExperience); ok {
		raw += s
		total += w.YearsOfExperience
		subs.YearsOfExp = percent(s, w.YearsOfExperience)
		activeSubs = append(activeSubs, subs.YearsOfExp)
		details = append(details, detail)
	}

	if s, detail, ok := scoreLocation(candidate, job, w.Location); ok {
		raw += s
		total += w.Location
		subs.Location = percent(s, w.Location)
		activeSubs = append(activeSubs, subs.Location)
		details = append(details, detail)
	}

	result := types.MatchResult{
		RawScore:      raw,
		TotalPossible: total,
		MatchDetails:  details,
	}
	if total == 0 {
		return result
	}

	result.IndividualScores = &subs

	if opts.UseMean {
		// Arithmetic mean over the active dimension sub-scores. With
		// equal weights this coincides with the weighted formula; the
		// separate path exists for callers that request it explicitly.
		var sum float64
		for _, s := range activeSubs {
			sum += s
		}
		result.Score = clampScore(math.Round(sum / float64(len(activeSubs))))
	} else {
		result.Score = clampScore(math.Round(raw / total * 100))
	}

	return result
}

func percent(score, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	return score / weight * 100
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

// scoreSkills implements the skills-overlap dimension. Candidate skills
// are matched against the job's explicit skill set, or against the
// free-text description when the job carries no skills.
func scoreSkills(candidate *types.Candidate, job *types.Job, weight float64) (float64, string, bool) {
	if weight <= 0 || len(candidate.Skills) == 0 {
		return 0, "", false
	}

	useDescription := len(job.Skills) == 0
	if useDescription && job.Description == "" {
		return 0, "", false
	}

	foldedDesc := strings.ToLower(job.Description)
	foldedJobSkills := make([]string, len(job.Skills))
	for i, s := range job.Skills {
		foldedJobSkills[i] = strings.ToLower(strings.TrimSpace(s))
	}

	var acc float64
	matched := make([]string, 0, len(candidate.Skills))

	for _, skill := range candidate.Skills {
		folded := strings.ToLower(strings.TrimSpace(skill))
		if folded == "" {
			continue
		}

		if useDescription {
			if strings.Contains(foldedDesc, folded) {
				acc += exactMatchPoints
				matched = append(matched, skill)
			} else if f := Similarity(skill, job.Description, descriptionThreshold); f > 0 {
				acc += f * fuzzyMatchFactor
				matched = append(matched, skill)
			}
			continue
		}

		if containsExact(foldedJobSkills, folded) {
			acc += exactMatchPoints
			matched = append(matched, skill)
			continue
		}

		if f := bestFuzzy(skill, job.Skills, skillThreshold); f > 0 {
			acc += f * fuzzyMatchFactor
			matched = append(matched, skill)
		}
	}

	score := math.Min(weight, acc/float64(len(candidate.Skills))*weight)

	detail := fmt.Sprintf("Skills: %d/%d matched", len(matched), len(candidate.Skills))
	if len(matched) > 0 {
		detail += " (" + strings.Join(matched, ", ") + ")"
	}

	return score, detail, true
}

// scoreTitles implements the title-vs-description dimension. Active only
// when the job has a description and the candidate has work history.
// The denominator is the count of matched titles, not total titles;
// unmatched titles neither help nor hurt the average.
func scoreTitles(candidate *types.Candidate, job *types.Job, weight float64) (float64, string, bool) {
	if weight <= 0 || job.Description == "" || len(candidate.Experience) == 0 {
		return 0, "", false
	}

	foldedDesc := strings.ToLower(job.Description)

	var acc float64
	matched := 0
	titles := 0

	for _, entry := range candidate.Experience {
		title := strings.TrimSpace(entry.Position)
		if title == "" {
			continue
		}
		titles++

		if strings.Contains(foldedDesc, strings.ToLower(title)) {
			acc += exactMatchPoints
			matched++
		} else if f := Similarity(title, job.Description, titleThreshold); f > 0 {
			acc += f * fuzzyMatchFactor
			matched++
		}
	}

	var score float64
	if matched > 0 {
		score = math.Min(weight, acc/float64(matched)*weight)
	}

	detail := fmt.Sprintf("Titles: %d/%d found in job description", matched, titles)
	return score, detail, true
}

// scoreYears implements the years-of-experience dimension. Durations are
// summed across entries with both boundaries present; entries that parse
// under neither the bare-year nor the calendar-date rule are skipped.
func scoreYears(candidate *types.Candidate, job *types.Job, weight float64) (float64, string, bool) {
	if weight <= 0 {
		return 0, "", false
	}

	var totalYears float64
	valid := 0

	for _, entry := range candidate.Experience {
		if entry.Start == "" || entry.End == "" {
			continue
		}
		years, ok := spanYears(entry.Start, entry.End)
		if !ok {
			continue
		}
		totalYears += years
		valid++
	}

	if valid == 0 {
		return 0, "", false
	}

	required := float64(job.Experience)
	award := bucketAward(totalYears, required)
	score := award * weight

	detail := fmt.Sprintf("Experience: %.1f years vs %d required", totalYears, job.Experience)
	return score, detail, true
}

// bucketAward maps total years against the requirement onto the discrete
// award steps. A zero requirement lands in the full-award bucket.
func bucketAward(totalYears, required float64) float64 {
	for _, b := range experienceBuckets {
		if totalYears >= b.minRatio*required {
			return b.award
		}
	}
	return experienceBuckets[len(experienceBuckets)-1].award
}

// spanYears computes the duration of one experience entry. Both
// boundaries as bare 4-digit years (> 1900) subtract directly; otherwise
// both must parse as calendar dates and the day difference is divided by
// 365.25.
func spanYears(start, end string) (float64, bool) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)

	sy, serr := strconv.Atoi(start)
	ey, eerr := strconv.Atoi(end)
	if serr == nil && eerr == nil {
		if sy > 1900 && ey > 1900 {
			return float64(ey - sy), true
		}
		return 0, false
	}

	st, ok := parseExperienceDate(start)
	if !ok {
		return 0, false
	}
	et, ok := parseExperienceDate(end)
	if !ok {
		return 0, false
	}

	return et.Sub(st).Hours() / 24 / 365.25, true
}

func parseExperienceDate(s string) (time.Time, bool) {
	for _, layout := range experienceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// scoreLocation implements the location dimension. Each preferred
// location scores against the job location string and the best one wins;
// a candidate open to many locations is not penalized for non-matches.
func scoreLocation(candidate *types.Candidate, job *types.Job, weight float64) (float64, string, bool) {
	if weight <= 0 || job.Location == "" || len(candidate.PreferredLocations) == 0 {
		return 0, "", false
	}

	foldedJobLoc := strings.ToLower(job.Location)

	var best float64
	bestLabel := ""

	for _, loc := range candidate.PreferredLocations {
		s, label := scoreOneLocation(loc, job.Location, foldedJobLoc, weight)
		if s > best {
			best = s
			bestLabel = label
		}
	}

	detail := "Location: no match for " + job.Location
	if bestLabel != "" {
		detail = fmt.Sprintf("Location: %s matches %s", bestLabel, job.Location)
	}

	return best, detail, true
}

func scoreOneLocation(loc types.PreferredLocation, jobLoc, foldedJobLoc string, weight float64) (float64, string) {
	city := strings.ToLower(strings.TrimSpace(loc.City))
	state := strings.ToLower(strings.TrimSpace(loc.State))
	country := strings.ToLower(strings.TrimSpace(loc.Country))

	switch {
	case city != "" && strings.Contains(foldedJobLoc, city):
		return weight, loc.City
	case state != "" && strings.Contains(foldedJobLoc, state):
		return 0.8 * weight, loc.State
	case country != "" && strings.Contains(foldedJobLoc, country):
		return 0.6 * weight, loc.Country
	}

	if f := Similarity(loc.City, jobLoc, locationThreshold); f > 0 {
		return f * 0.8 * weight, loc.City
	}
	if f := Similarity(loc.State, jobLoc, locationThreshold); f > 0 {
		return f * 0.6 * weight, loc.State
	}

	return 0, ""
}

func containsExact(folded []string, target string) bool {
	for _, s := range folded {
		if s == target {
			return true
		}
	}
	return false
}

func bestFuzzy(skill string, jobSkills []string, threshold float64) float64 {
	var best float64
	for _, js := range jobSkills {
		if f := Similarity(skill, js, threshold); f > best {
			best = f
		}
	}
	return best
}
