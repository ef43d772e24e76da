package frontier

import (
	"github.com/cml22/crawler-seo/pkg/models"
)

// Frontier tracks discovered URLs and orders them breadth-first. The page cap
// is enforced at discovery time: once maxPages URLs have been admitted to the
// visited set, no further URLs are accepted, which bounds both the queue and
// the number of fetches a run can perform.
type Frontier struct {
	visited  map[string]struct{}
	queue    []models.WorkItem
	maxPages int
}

// New creates a Frontier admitting at most maxPages unique URLs
func New(maxPages int) *Frontier {
	return &Frontier{
		visited:  make(map[string]struct{}),
		maxPages: maxPages,
	}
}

// Seed inserts the normalized start URL at depth 0
func (f *Frontier) Seed(normalizedURL string) {
	f.Enqueue(normalizedURL, 0)
}

// Enqueue admits a normalized URL at the given depth. Returns false if the
// URL was already seen or the page cap has been reached.
func (f *Frontier) Enqueue(normalizedURL string, depth int) bool {
	if _, seen := f.visited[normalizedURL]; seen {
		return false
	}
	if len(f.visited) >= f.maxPages {
		return false
	}
	f.visited[normalizedURL] = struct{}{}
	f.queue = append(f.queue, models.WorkItem{URL: normalizedURL, Depth: depth})
	return true
}

// Next pops the oldest queued item. Returns false when the queue is empty.
func (f *Frontier) Next() (models.WorkItem, bool) {
	if len(f.queue) == 0 {
		return models.WorkItem{}, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item, true
}

// VisitedCount reports how many unique URLs have been admitted
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}

// QueueLen reports how many admitted URLs are still waiting to be processed
func (f *Frontier) QueueLen() int {
	return len(f.queue)
}
