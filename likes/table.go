package likes

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoSuchUser is returned when a user has no entry in the table.
var ErrNoSuchUser = errors.New("no like count for user")

// Table is the like-count table. It is the single owner of the counts:
// every mutation goes through Update, which notifies exactly once.
// Updates are serialized; the notifier may read the table but must not
// call Update.
type Table struct {
	mu       sync.Mutex // serializes Update
	store    Store
	notifier Notifier
}

// NewTable returns a table over store that notifies notifier on every update.
func NewTable(store Store, notifier Notifier) *Table {
	return &Table{store: store, notifier: notifier}
}

// Likes returns the count for id, or ErrNoSuchUser.
func (t *Table) Likes(id int64) (int, error) {
	count, ok, err := t.store.Load(id)
	if err != nil {
		return 0, fmt.Errorf("failed to load likes of %d: %w", id, err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNoSuchUser, id)
	}
	return count, nil
}

// Update records count for id and sends one re-render notification.
// Nothing is sent if the store rejects the update.
func (t *Table) Update(id int64, count int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Store(id, count); err != nil {
		return err
	}
	t.notifier.Rerender(newNotification(SourceTable, id, count))
	return nil
}
