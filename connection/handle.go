package connection

// Handle is a weak write handle onto a running connection task: sending
// on it after the task has torn down is a harmless no-op rather than a
// block or a panic, so a caller holding a stale Handle past disconnect
// cannot accidentally keep the task's goroutines alive or deadlock.
type Handle struct {
	writes chan<- []byte
	done   <-chan struct{}
}

// Send enqueues data for transmission. It returns false (silently,
// matching "failures from the write channel due to a shutting-down
// runtime are swallowed") if the task has already torn down.
func (h *Handle) Send(data []byte) bool {
	if h == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.writes <- data:
		return true
	case <-h.done:
		return false
	}
}
