// ABOUTME: Badger-backed document store for fast local KV storage.
// ABOUTME: Keys are collection-prefixed ("plans/<uuid>") with prefix iteration.
package store

import (
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

type badgerEngine struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger-backed document store in dir.
func OpenBadger(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return newDocStore(&badgerEngine{db: db}), nil
}

func (e *badgerEngine) key(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

func (e *badgerEngine) list(collection string) ([]item, error) {
	prefix := []byte(collection + "/")

	var items []item
	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			entry := it.Item()
			id := string(entry.Key()[len(prefix):])
			data, err := entry.ValueCopy(nil)
			if err != nil {
				return err
			}
			items = append(items, item{id: id, data: data})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return items, nil
}

func (e *badgerEngine) put(collection, id string, data []byte) error {
	err := e.db.Update(func(txn *badger.Txn) error {
		return txn.Set(e.key(collection, id), data)
	})
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

func (e *badgerEngine) close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}
