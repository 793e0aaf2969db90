package dataset

import (
	"strings"
	"sync"
)

// Session cache for load results, keyed by the candidate path set. The
// table is write-once per key and read-only thereafter; a dashboard
// reset only restores filter defaults and never re-reads from disk.
var (
	cacheMu sync.Mutex
	cache   = make(map[string]*Result)
)

func (l *Loader) cacheKey() string {
	parts := make([]string, 0, len(l.Candidates)+1)
	parts = append(parts, l.Candidates...)
	parts = append(parts, l.JSONLPath)
	return strings.Join(parts, "\x00")
}

// LoadCached returns the cached result for this loader's path set,
// performing the load on first use.
func (l *Loader) LoadCached() *Result {
	key := l.cacheKey()
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if res, ok := cache[key]; ok {
		return res
	}
	res := l.Load()
	cache[key] = res
	return res
}

// InvalidateCache drops all cached load results. Only used by tests and
// explicit re-read paths; a user-facing reset does not call this.
func InvalidateCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]*Result)
}
