package pipeline

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"usagemark/internal/model"
	"usagemark/internal/source"
	"usagemark/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Redecoded int
}

// LoadWithCache diffs the source files against the cache, decodes only the
// changed files, and returns the combined record set. Unchanged files are
// served from the cache; changed files are re-decoded and saved back.
// Records come back in input path order regardless of where they came from.
func LoadWithCache(paths []string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	result := &CachedLoadResult{LoadResult: LoadResult{TotalFiles: len(paths)}}
	if len(paths) == 0 {
		return result, nil
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, err
	}

	// Partition into unchanged and stale
	unchanged := make(map[string]bool, len(paths))
	var toDecode []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			result.Failed++
			result.Problems = append(result.Problems, err.Error())
			continue
		}
		t, ok := tracked[p]
		if ok && t.MtimeNs == info.ModTime().UnixNano() && t.SizeBytes == info.Size() {
			unchanged[p] = true
		} else {
			toDecode = append(toDecode, p)
		}
	}

	result.CacheHits = len(unchanged)
	result.Redecoded = len(toDecode)

	byPath := make(map[string]model.UsageRecord, len(paths))

	if len(unchanged) > 0 {
		all, err := cache.LoadAllRecords()
		if err != nil {
			return nil, err
		}
		for p := range unchanged {
			if rec, ok := all[p]; ok {
				byPath[p] = rec
			}
		}
	}

	if len(toDecode) > 0 {
		numWorkers := runtime.GOMAXPROCS(0)
		if numWorkers < 1 {
			numWorkers = 4
		}
		if numWorkers > len(toDecode) {
			numWorkers = len(toDecode)
		}

		type outcome struct {
			rec model.UsageRecord
			err error
		}

		work := make(chan int, len(toDecode))
		outcomes := make([]outcome, len(toDecode))
		var wg sync.WaitGroup
		var processed atomic.Int64

		for i := range toDecode {
			work <- i
		}
		close(work)

		wg.Add(numWorkers)
		for w := 0; w < numWorkers; w++ {
			go func() {
				defer wg.Done()
				for idx := range work {
					rec, err := source.DecodeFile(toDecode[idx])
					outcomes[idx] = outcome{rec: rec, err: err}
					n := processed.Add(1)
					if progressFn != nil {
						progressFn(int(n)+result.CacheHits, result.TotalFiles)
					}
				}
			}()
		}

		wg.Wait()

		for i, o := range outcomes {
			if o.err != nil {
				result.Failed++
				result.Problems = append(result.Problems, o.err.Error())
				continue
			}
			byPath[toDecode[i]] = o.rec

			if info, err := os.Stat(toDecode[i]); err == nil {
				_ = cache.SaveRecord(toDecode[i], o.rec, info.ModTime().UnixNano(), info.Size())
			}
		}
	}

	for _, p := range paths {
		if rec, ok := byPath[p]; ok {
			result.Records = append(result.Records, rec)
			result.Loaded++
		}
	}

	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "usagemark")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "usagemark")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "records.db")
}
