// ABOUTME: Document store interface and the shared engine-backed implementation.
// ABOUTME: Backends supply a minimal KV surface; find/upsert logic lives here.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Collection names used by the coaching core.
const (
	Users           = "users"
	SensorData      = "sensordata"
	Plans           = "plans"
	Recommendations = "recommendations"
	Feedback        = "feedback"
)

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

// Doc is a schemaless JSON document. Reads attach the storage key as "_id".
type Doc map[string]any

// Sort orders results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// FindOptions carries optional sort and limit for queries.
type FindOptions struct {
	Sort  *Sort
	Limit int
}

// Store is the document-store collaborator the coaching core depends on.
// All calls are synchronous and blocking; retry and backoff belong to the
// backend, not the callers.
type Store interface {
	// FindMany returns all documents in collection matching filter,
	// optionally sorted and limited. Order is unspecified without a sort.
	FindMany(collection string, filter Filter, opts *FindOptions) ([]Doc, error)

	// FindOne returns the first matching document (after any sort),
	// or ErrNotFound.
	FindOne(collection string, filter Filter, opts *FindOptions) (Doc, error)

	// Upsert merges set into the first document matching filter, or inserts
	// a new document built from the filter's equality fields plus set.
	Upsert(collection string, filter Filter, set Doc) error

	// InsertOne appends a single document.
	InsertOne(collection string, doc Doc) error

	// InsertMany appends a batch of documents.
	InsertMany(collection string, docs []Doc) error

	Close() error
}

// Encode converts a typed model to a Doc via its JSON form.
func Encode(v any) (Doc, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

// Decode converts a Doc back into a typed model.
func Decode(doc Doc, v any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// DecodeAll converts a slice of Docs into typed models.
func DecodeAll[T any](docs []Doc) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := Decode(doc, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// item is one stored document with its key.
type item struct {
	id   string
	data []byte
}

// engine is the minimal surface a storage backend provides.
type engine interface {
	list(collection string) ([]item, error)
	put(collection, id string, data []byte) error
	close() error
}

// docStore implements Store over an engine. The mutex makes each
// read-modify-write (upsert) atomic within this process; racing upserts
// across processes stay last-write-wins.
type docStore struct {
	mu  sync.Mutex
	eng engine
}

func newDocStore(eng engine) *docStore {
	return &docStore{eng: eng}
}

func (s *docStore) FindMany(collection string, filter Filter, opts *FindOptions) ([]Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findMany(collection, filter, opts)
}

func (s *docStore) FindOne(collection string, filter Filter, opts *FindOptions) (Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.findMany(collection, filter, opts)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (s *docStore) Upsert(collection string, filter Filter, set Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.eng.list(collection)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}

	for _, it := range items {
		doc, err := decodeItem(it)
		if err != nil {
			continue
		}
		if !filter.Matches(doc) {
			continue
		}
		delete(doc, "_id")
		for k, v := range set {
			doc[k] = v
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", collection, err)
		}
		return s.eng.put(collection, it.id, data)
	}

	// No match: build the new document from the filter's equality fields,
	// then the set fields, mirroring $set-with-upsert semantics.
	doc := Doc{}
	for k, v := range filter {
		if _, isRange := v.(Range); isRange {
			continue
		}
		doc[k] = jsonSafe(v)
	}
	for k, v := range set {
		doc[k] = v
	}
	return s.insert(collection, doc)
}

func (s *docStore) InsertOne(collection string, doc Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(collection, doc)
}

func (s *docStore) InsertMany(collection string, docs []Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		if err := s.insert(collection, doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *docStore) Close() error {
	return s.eng.close()
}

func (s *docStore) findMany(collection string, filter Filter, opts *FindOptions) ([]Doc, error) {
	items, err := s.eng.list(collection)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}

	var docs []Doc
	for _, it := range items {
		doc, err := decodeItem(it)
		if err != nil {
			continue // skip invalid entries
		}
		if filter.Matches(doc) {
			docs = append(docs, doc)
		}
	}

	if opts != nil && opts.Sort != nil {
		sortDocs(docs, opts.Sort)
	}
	if opts != nil && opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

func (s *docStore) insert(collection string, doc Doc) error {
	payload := make(Doc, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		payload[k] = v
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("insert %s: %w", collection, err)
	}
	return s.eng.put(collection, uuid.NewString(), data)
}

func decodeItem(it item) (Doc, error) {
	var doc Doc
	if err := json.Unmarshal(it.data, &doc); err != nil {
		return nil, err
	}
	doc["_id"] = it.id
	return doc, nil
}

// jsonSafe round-trips a single value through JSON so documents built from
// filter fields hold the same representation as encoded models.
func jsonSafe(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
