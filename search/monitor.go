package search

// Monitor receives engine activity callbacks. Implementations must be
// safe for concurrent use.
type Monitor interface {
	// SearchCompleted is invoked after every search with the normalized
	// query, the number of records that matched before truncation, and
	// the number of results returned.
	SearchCompleted(query string, matched, returned int)
}

type noopMonitor struct{}

func (noopMonitor) SearchCompleted(string, int, int) {}
