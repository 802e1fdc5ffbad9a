package shopper

import "sync"

// LatestNotifier keeps only the most recent message, mirroring a snackbar
// that shows one alert at a time.
type LatestNotifier struct {
	mu   sync.Mutex
	msg  string
	seen bool
}

func (n *LatestNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msg = msg
	n.seen = false
}

// Last returns the most recent message and whether it has already been
// returned before.
func (n *LatestNotifier) Last() (msg string, fresh bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fresh = !n.seen && n.msg != ""
	n.seen = true
	return n.msg, fresh
}
