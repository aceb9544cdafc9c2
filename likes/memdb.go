package likes

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	memdbTable = "likes"
	memdbIndex = "id"
)

type likeRow struct {
	UserID int64
	Count  int
}

func memdbSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIndex: {
						Name:    memdbIndex,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "UserID"},
					},
				},
			},
		},
	}
}

type memDBStore struct {
	db *memdb.MemDB
}

// NewMemDBStore returns a Store backed by an in-memory go-memdb database
// seeded with init.
func NewMemDBStore(init map[int64]int) (Store, error) {
	db, err := memdb.NewMemDB(memdbSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()
	for id, count := range init {
		if err := txn.Insert(memdbTable, &likeRow{UserID: id, Count: count}); err != nil {
			return nil, fmt.Errorf("failed to seed likes of %d: %w", id, err)
		}
	}
	txn.Commit()

	return memDBStore{db: db}, nil
}

func (s memDBStore) Load(id int64) (int, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memdbTable, memdbIndex, id)
	if err != nil || raw == nil {
		return 0, false, err
	}
	return raw.(*likeRow).Count, true, nil
}

func (s memDBStore) Store(id int64, count int) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memdbTable, &likeRow{UserID: id, Count: count}); err != nil {
		return fmt.Errorf("failed to store likes of %d: %w", id, err)
	}
	txn.Commit()
	return nil
}
