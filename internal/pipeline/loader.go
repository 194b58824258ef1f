package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"

	"usagemark/internal/model"
	"usagemark/internal/source"
)

// LoadResult holds the output of the data loading pipeline.
type LoadResult struct {
	Records    []model.UsageRecord
	TotalFiles int
	Loaded     int
	Failed     int
	Problems   []string // one message per file that could not be decoded
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load decodes all usage report files using a bounded worker pool. Records
// come back in input path order, so the result is deterministic regardless
// of which reads finish first; a file that fails to decode is reported in
// Problems and skipped rather than failing the whole load.
func Load(paths []string, progressFn ProgressFunc) *LoadResult {
	result := &LoadResult{TotalFiles: len(paths)}
	if len(paths) == 0 {
		return result
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}

	type decoded struct {
		rec model.UsageRecord
		err error
	}

	work := make(chan int, len(paths))
	results := make([]decoded, len(paths))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range paths {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				rec, err := source.DecodeFile(paths[idx])
				results[idx] = decoded{rec: rec, err: err}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(paths))
				}
			}
		}()
	}

	wg.Wait()

	for _, d := range results {
		if d.err != nil {
			result.Failed++
			result.Problems = append(result.Problems, d.err.Error())
			continue
		}
		result.Loaded++
		result.Records = append(result.Records, d.rec)
	}

	return result
}
