package matching

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

// DefaultLimit is the number of ranked results returned when the caller
// does not override it.
const DefaultLimit = 10

// parallelThreshold is the pool size above which ranking shards the
// scoring work across goroutines. Scoring is pure and allocation-local,
// so sharding needs no synchronization beyond the pre-sized result slice.
const parallelThreshold = 500

// Options controls a ranking call.
type Options struct {
	// Weights is the per-dimension weight profile; zero value falls back
	// to DefaultMatchWeights.
	Weights types.MatchWeights

	// UseMean switches final-score aggregation to the arithmetic mean of
	// active dimension sub-scores (see ScoreOptions.UseMean).
	UseMean bool

	// Limit caps the number of results; zero or negative falls back to
	// DefaultLimit.
	Limit int
}

// RankedJob pairs a job projection with its match result.
type RankedJob struct {
	Job types.JobSummary `json:"job"`
	types.MatchResult
}

// RankedCandidate pairs a candidate projection with its match result.
type RankedCandidate struct {
	Candidate types.CandidateSummary `json:"candidate"`
	types.MatchResult
}

// JobRanking is the output of ranking jobs for one candidate.
type JobRanking struct {
	Results    []RankedJob
	Considered int
}

// CandidateRanking is the output of ranking candidates for one job.
type CandidateRanking struct {
	Results    []RankedCandidate
	Considered int
}

// RankJobs scores every job against the anchor candidate, drops jobs
// with no comparable dimensions, and returns the top results sorted by
// score descending. Ties keep input order (stable sort). The anchor must
// be non-nil and the weight profile valid; both are programming errors,
// not data-quality conditions, and fail fast.
func RankJobs(candidate *types.Candidate, jobs []types.Job, opts Options) (*JobRanking, error) {
	if candidate == nil {
		return nil, fmt.Errorf("anchor candidate is required")
	}
	opts = normalize(opts)

	results := scoreAll(len(jobs), func(i int) types.MatchResult {
		return Score(candidate, &jobs[i], ScoreOptions{Weights: opts.Weights, UseMean: opts.UseMean})
	})

	ranked := make([]RankedJob, 0, len(jobs))
	for i, r := range results {
		if !r.Comparable() {
			continue
		}
		ranked = append(ranked, RankedJob{Job: jobs[i].Summary(), MatchResult: r})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	considered := len(ranked)
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	return &JobRanking{Results: ranked, Considered: considered}, nil
}

// RankCandidates scores every candidate against the anchor job. Same
// semantics as RankJobs in the other direction.
func RankCandidates(job *types.Job, candidates []types.Candidate, opts Options) (*CandidateRanking, error) {
	if job == nil {
		return nil, fmt.Errorf("anchor job is required")
	}
	opts = normalize(opts)

	results := scoreAll(len(candidates), func(i int) types.MatchResult {
		return Score(&candidates[i], job, ScoreOptions{Weights: opts.Weights, UseMean: opts.UseMean})
	})

	ranked := make([]RankedCandidate, 0, len(candidates))
	for i, r := range results {
		if !r.Comparable() {
			continue
		}
		ranked = append(ranked, RankedCandidate{Candidate: candidates[i].Summary(), MatchResult: r})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	considered := len(ranked)
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	return &CandidateRanking{Results: ranked, Considered: considered}, nil
}

func normalize(opts Options) Options {
	if !opts.Weights.Valid() {
		opts.Weights = types.DefaultMatchWeights()
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return opts
}

// scoreAll evaluates score(i) for i in [0, n), sharding across
// goroutines for large pools. Results land at their input index, so the
// output is deterministic regardless of scheduling.
func scoreAll(n int, score func(i int) types.MatchResult) []types.MatchResult {
	results := make([]types.MatchResult, n)

	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			results[i] = score(i)
		}
		return results
	}

	shards := runtime.GOMAXPROCS(0)
	chunk := (n + shards - 1) / shards

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = score(i)
			}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return results
}
