package likes_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/on-the-ground/likebox/likes"
	"github.com/on-the-ground/likebox/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	seen []likes.Notification
}

func (r *recorder) Rerender(n likes.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func stores(t *testing.T, init map[int64]int) map[string]likes.Store {
	memdbStore, err := likes.NewMemDBStore(init)
	require.NoError(t, err)
	return map[string]likes.Store{
		"memory": likes.NewInMemoryStore(init),
		"memdb":  memdbStore,
	}
}

func TestTable_Likes(t *testing.T) {
	for name, store := range stores(t, map[int64]int{1: 5, 2: 9}) {
		t.Run(name, func(t *testing.T) {
			table := likes.NewTable(store, &recorder{})

			n, err := table.Likes(1)
			require.NoError(t, err)
			assert.Equal(t, 5, n)

			n, err = table.Likes(2)
			require.NoError(t, err)
			assert.Equal(t, 9, n)

			_, err = table.Likes(3)
			assert.ErrorIs(t, err, likes.ErrNoSuchUser)
		})
	}
}

func TestTable_UpdatePropagates(t *testing.T) {
	for name, store := range stores(t, map[int64]int{1: 5}) {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			table := likes.NewTable(store, rec)

			require.NoError(t, table.Update(1, 6))
			n, err := table.Likes(1)
			require.NoError(t, err)
			assert.Equal(t, 6, n)
			assert.Equal(t, 1, rec.count())

			// a user without a prior entry gets one
			require.NoError(t, table.Update(42, 1))
			n, err = table.Likes(42)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			assert.Equal(t, 2, rec.count())

			last := rec.seen[1]
			assert.Equal(t, likes.SourceTable, last.Source)
			assert.Equal(t, int64(42), last.UserID)
			assert.Equal(t, 1, last.Likes)
			assert.NotEqual(t, rec.seen[0].ID, last.ID)
		})
	}
}

type failingStore struct{ inner likes.Store }

func (f failingStore) Load(id int64) (int, bool, error) { return f.inner.Load(id) }

func (failingStore) Store(int64, int) error { return errors.New("read only") }

func TestTable_UpdateFailureDoesNotNotify(t *testing.T) {
	rec := &recorder{}
	table := likes.NewTable(failingStore{inner: likes.NewInMemoryStore(nil)}, rec)

	assert.Error(t, table.Update(1, 1))
	assert.Equal(t, 0, rec.count())
}

func TestTable_NotifierMayReadTable(t *testing.T) {
	var table *likes.Table
	var observed int
	table = likes.NewTable(likes.NewInMemoryStore(map[int64]int{1: 0}), likes.NotifierFunc(func(n likes.Notification) {
		observed, _ = table.Likes(n.UserID)
	}))

	require.NoError(t, table.Update(1, 3))
	assert.Equal(t, 3, observed)
}

func TestTable_ConcurrentUpdates(t *testing.T) {
	rec := &recorder{}
	table := likes.NewTable(likes.NewInMemoryStore(nil), rec)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, table.Update(int64(i%5), i))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, rec.count())
}

func TestCounter_Increment(t *testing.T) {
	rec := &recorder{}
	counter := likes.NewCounter(0, rec)
	assert.Equal(t, 0, counter.Value())

	require.NoError(t, counter.Increment())
	assert.Equal(t, 1, counter.Value())
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, likes.SourceCounter, rec.seen[0].Source)
	assert.Equal(t, 1, rec.seen[0].Likes)
}

func TestNotifiers_FanOutInOrder(t *testing.T) {
	var order []string
	n := likes.Notifiers(
		likes.NotifierFunc(func(likes.Notification) { order = append(order, "first") }),
		likes.NewZapNotifier(logging.NewTest()),
		likes.NotifierFunc(func(likes.Notification) { order = append(order, "second") }),
	)

	counter := likes.NewCounter(0, n)
	require.NoError(t, counter.Increment())
	assert.Equal(t, []string{"first", "second"}, order)
}
