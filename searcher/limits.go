package searcher

import "time"

// Deadline checks are sampled every checkInterval nodes.
const checkInterval = 256

type limiter struct {
	deadline time.Time // Zero means no deadline
	nodes    int       // Zero means no node limit
}

func newLimiter(duration time.Duration, nodes int) limiter {
	l := limiter{nodes: nodes}
	if duration > 0 {
		l.deadline = time.Now().Add(duration)
	}
	return l
}

func (l limiter) enabled() bool {
	return !l.deadline.IsZero() || l.nodes > 0
}

// exceeded reports whether a search that has visited the given number of
// nodes must stop.
func (l limiter) exceeded(visited int) bool {
	if l.nodes > 0 && visited >= l.nodes {
		return true
	}
	if !l.deadline.IsZero() && visited%checkInterval == 0 {
		return time.Now().After(l.deadline)
	}
	return false
}
