// ABOUTME: Data migration between document store backends.
// ABOUTME: Copies every collection from source to destination.
package store

import (
	"fmt"
)

// MigrateSummary holds per-collection counts of migrated documents.
type MigrateSummary struct {
	Counts map[string]int
}

// Total returns the number of documents migrated across all collections.
func (s *MigrateSummary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// MigrateData copies all documents from src to dst. The destination should
// be empty before calling; documents receive fresh storage keys.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{Counts: make(map[string]int)}

	for _, collection := range collections {
		docs, err := src.FindMany(collection, Filter{}, nil)
		if err != nil {
			return nil, fmt.Errorf("list source %s: %w", collection, err)
		}
		if len(docs) == 0 {
			continue
		}
		for _, doc := range docs {
			delete(doc, "_id")
		}
		if err := dst.InsertMany(collection, docs); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", collection, err)
		}
		summary.Counts[collection] = len(docs)
	}
	return summary, nil
}
