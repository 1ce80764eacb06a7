package quality

import (
	"runtime"
	"sync"

	"github.com/genotools/snpqc/internal/genotype"
)

// WorkItem holds one parsed dataset ready for assessment.
type WorkItem struct {
	Seq     int
	Name    string // dataset label, typically the input path
	Records []genotype.Record
	Header  []string // raw file comment lines, platform hint (optional)
	Extra   any      // caller-specific data carried through untouched
}

// WorkResult holds the report for a single dataset.
type WorkResult struct {
	Seq    int
	Name   string
	Report *Report
	Extra  any
}

// ParallelAssess assesses datasets using a pool of workers. Assessments
// share no mutable state, so datasets parallelize trivially.
// Results arrive on the returned channel in completion order; use
// OrderedCollect to consume them in sequence-number order.
// If workers is 0, runtime.NumCPU() is used.
func (a *Assessor) ParallelAssess(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for item := range items {
				assessor := a
				if len(item.Header) > 0 {
					opts := a.opts
					opts.Header = item.Header
					assessor = NewAssessor(opts)
					assessor.SetLogger(a.logger)
				}
				results <- WorkResult{
					Seq:    item.Seq,
					Name:   item.Name,
					Report: assessor.Assess(item.Records),
					Extra:  item.Extra,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// Out-of-order results are buffered in a pending map and emitted as soon
// as the next expected sequence number is available. Blocks until the
// results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
