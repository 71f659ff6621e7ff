package reconcile

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dbforge-tools/sprocdiff/internal/diff"
	"github.com/dbforge-tools/sprocdiff/internal/normalize"
	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// Reconciler compares two parsed sets under a fixed normalizer
// configuration. Safe for concurrent use by multiple goroutines.
type Reconciler struct {
	normalizer normalize.Normalizer
	logger     sprocdiff.Logger
	workers    int
}

// New creates a Reconciler. Options are validated here, before any input
// is touched, so an invalid configuration fails the run up front.
// Panics if logger is nil.
func New(opts sprocdiff.NormalizeOptions, logger sprocdiff.Logger) (*Reconciler, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}
	n, err := normalize.New(opts)
	if err != nil {
		return nil, err
	}
	return &Reconciler{
		normalizer: n,
		logger:     logger,
		workers:    runtime.NumCPU(),
	}, nil
}

// Compare partitions the two sets into added, removed, unchanged and
// modified. Every key from either set lands in exactly one category.
// All result slices are ordered by ascending key; parse anomalies from
// both inputs are carried through unmodified, source side first.
func (r *Reconciler) Compare(source, target sprocdiff.ParsedSet) *sprocdiff.ComparisonResult {
	sourceByKey := indexByKey(source.Records)
	targetByKey := indexByKey(target.Records)

	result := &sprocdiff.ComparisonResult{
		RunID:       sprocdiff.NewRunID(),
		SourceLabel: source.Source,
		TargetLabel: target.Source,
		Options:     r.normalizer.Options(),
	}
	result.Anomalies = append(result.Anomalies, source.Anomalies...)
	result.Anomalies = append(result.Anomalies, target.Anomalies...)

	var matchedKeys []string
	for key, rec := range targetByKey {
		if _, ok := sourceByKey[key]; ok {
			matchedKeys = append(matchedKeys, key)
		} else {
			result.Added = append(result.Added, rec)
		}
	}
	for key, rec := range sourceByKey {
		if _, ok := targetByKey[key]; !ok {
			result.Removed = append(result.Removed, rec)
		}
	}

	sort.Slice(result.Added, func(i, j int) bool {
		return result.Added[i].Key() < result.Added[j].Key()
	})
	sort.Slice(result.Removed, func(i, j int) bool {
		return result.Removed[i].Key() < result.Removed[j].Key()
	})
	sort.Strings(matchedKeys)

	r.logger.Verbose("reconciled keys: %d added, %d removed, %d matched",
		len(result.Added), len(result.Removed), len(matchedKeys))

	comparisons := r.comparePairs(matchedKeys, sourceByKey, targetByKey)
	for _, c := range comparisons {
		if c.modified == nil {
			result.Unchanged = append(result.Unchanged, c.pair)
		} else {
			result.Modified = append(result.Modified, *c.modified)
		}
	}

	result.GeneratedAt = time.Now()
	return result
}

// pairComparison is the outcome for one matched key. modified is nil
// when the normalized bodies are identical.
type pairComparison struct {
	pair     sprocdiff.MatchedPair
	modified *sprocdiff.ModifiedProcedure
}

// comparePairs normalizes and diffs the matched pairs on a bounded
// worker pool. The returned slice follows the order of keys, so callers
// see deterministic output regardless of scheduling.
func (r *Reconciler) comparePairs(keys []string, sourceByKey, targetByKey map[string]sprocdiff.ProcedureRecord) []pairComparison {
	if len(keys) == 0 {
		return nil
	}

	results := make([]pairComparison, len(keys))
	jobs := make(chan int)

	workers := r.workers
	if workers > len(keys) {
		workers = len(keys)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				key := keys[idx]
				results[idx] = r.comparePair(sourceByKey[key], targetByKey[key])
			}
		}()
	}
	for idx := range keys {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// comparePair decides unchanged vs modified for one matched pair. The
// decision is made on normalized text only; raw definitions stay on the
// records for inspection.
func (r *Reconciler) comparePair(source, target sprocdiff.ProcedureRecord) pairComparison {
	pair := sprocdiff.MatchedPair{Source: source, Target: target}

	sourceLines := r.normalizer.Lines(source.Definition)
	targetLines := r.normalizer.Lines(target.Definition)

	ops := diff.Compute(sourceLines, targetLines)
	if !diff.Changed(ops) {
		return pairComparison{pair: pair}
	}

	return pairComparison{
		pair: pair,
		modified: &sprocdiff.ModifiedProcedure{
			MatchedPair: pair,
			Diff:        ops,
			Similarity:  diff.Similarity(ops, len(sourceLines), len(targetLines)),
		},
	}
}

// indexByKey builds the key join map. Duplicate keys within one set are
// already reported as parse anomalies; the first occurrence is retained
// here deterministically for join purposes.
func indexByKey(records []sprocdiff.ProcedureRecord) map[string]sprocdiff.ProcedureRecord {
	m := make(map[string]sprocdiff.ProcedureRecord, len(records))
	for _, rec := range records {
		key := rec.Key()
		if _, ok := m[key]; !ok {
			m[key] = rec
		}
	}
	return m
}
