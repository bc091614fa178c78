// ABOUTME: Charm KV document store with automatic cloud sync after writes.
// ABOUTME: Data is E2E encrypted with the user's SSH key via Charm Cloud.
package store

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "coach"
	charmHost   = "charm.2389.dev"
)

type charmEngine struct {
	kv       *kv.KV
	autoSync bool
}

// OpenCharm opens the Charm KV document store, pulling remote state first.
// Falls back to read-only mode when another process holds the lock.
func OpenCharm() (Store, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return newDocStore(&charmEngine{kv: db, autoSync: true}), nil
}

func (e *charmEngine) key(collection, id string) []byte {
	return []byte(collection + ":" + id)
}

func (e *charmEngine) list(collection string) ([]item, error) {
	prefix := []byte(collection + ":")

	keys, err := e.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	var items []item
	for _, key := range keys {
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		val, err := e.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		items = append(items, item{id: string(key[len(prefix):]), data: val})
	}
	return items, nil
}

func (e *charmEngine) put(collection, id string, data []byte) error {
	if e.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := e.kv.Set(e.key(collection, id), data); err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	if e.autoSync && !e.kv.IsReadOnly() {
		_ = e.kv.Sync()
	}
	return nil
}

func (e *charmEngine) close() error {
	if e.kv != nil {
		return e.kv.Close()
	}
	return nil
}
