package crawl

// Frontier is the FIFO queue plus exact seen set driving breadth-first
// traversal. Deduplication is exact: a URL is processed at most once per
// run, so the seen set is a plain map rather than a probabilistic filter.
//
// The frontier is owned by a single crawl loop and is not safe for
// concurrent use.
type Frontier struct {
	seen  map[string]struct{}
	queue []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: make(map[string]struct{}),
	}
}

// Push appends a URL to the queue unless it has already been seen.
// Returns false if the URL was dropped. The queue may still hold the same
// unseen URL more than once; MarkSeen at dequeue time guarantees
// at-most-once processing.
func (f *Frontier) Push(url string) bool {
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the head of the queue (FIFO).
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// MarkSeen records a URL as processed. Returns false if it was already
// seen, in which case the caller must discard it.
func (f *Frontier) MarkSeen(url string) bool {
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = struct{}{}
	return true
}

// Seen returns true if the URL has been processed.
func (f *Frontier) Seen(url string) bool {
	_, ok := f.seen[url]
	return ok
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}
