package outbox

import (
	"fmt"

	"RedeemVault/internal/storage"
)

// Executor performs one outbound call inside the current unit.
// It may queue further effects on the log being flushed.
type Executor interface {
	Execute(tx *storage.Tx, e Effect) error
}

// Log is the effect queue of one unit of work.
type Log struct {
	queue []Effect // queue holds effects in issue order
	next  int      // next is the index of the first unflushed effect
}

// Queue appends an effect.
func (l *Log) Queue(e Effect) {
	l.queue = append(l.queue, e)
}

// Pending returns the number of effects not yet flushed.
func (l *Log) Pending() int {
	return len(l.queue) - l.next
}

// Effects returns every effect queued so far, flushed or not.
func (l *Log) Effects() []Effect {
	return l.queue
}

// Flush executes queued effects in FIFO order until the queue drains,
// journaling each one under unit. The first executor error aborts the flush.
func (l *Log) Flush(tx *storage.Tx, unit [32]byte, exec Executor) error {
	for l.next < len(l.queue) {
		e := l.queue[l.next]
		l.next++

		if err := exec.Execute(tx, e); err != nil {
			return fmt.Errorf("%s:\n%w", e.Kind, err)
		}

		if _, err := Append(tx, unit, e); err != nil {
			return err
		}
	}

	return nil
}
