// ABOUTME: Export and import of all coaching collections.
// ABOUTME: Supports JSON and YAML formats.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// collections lists every collection the coaching core writes.
var collections = []string{Users, SensorData, Plans, Recommendations, Feedback}

// ExportData is the full export format for coaching data.
type ExportData struct {
	Version         string    `json:"version" yaml:"version"`
	ExportedAt      time.Time `json:"exported_at" yaml:"exported_at"`
	Tool            string    `json:"tool" yaml:"tool"`
	Users           []Doc     `json:"users" yaml:"users"`
	SensorData      []Doc     `json:"sensordata" yaml:"sensordata"`
	Plans           []Doc     `json:"plans" yaml:"plans"`
	Recommendations []Doc     `json:"recommendations" yaml:"recommendations"`
	Feedback        []Doc     `json:"feedback" yaml:"feedback"`
}

// GetAllData retrieves every document for export.
func GetAllData(s Store) (*ExportData, error) {
	out := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Tool:       "coach",
	}

	for _, collection := range collections {
		docs, err := s.FindMany(collection, Filter{}, nil)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", collection, err)
		}
		for _, doc := range docs {
			delete(doc, "_id")
		}
		switch collection {
		case Users:
			out.Users = docs
		case SensorData:
			out.SensorData = docs
		case Plans:
			out.Plans = docs
		case Recommendations:
			out.Recommendations = docs
		case Feedback:
			out.Feedback = docs
		}
	}
	return out, nil
}

// ImportData loads exported documents into the store. The destination
// should be empty before calling; documents receive fresh storage keys.
func ImportData(s Store, data *ExportData) error {
	batches := map[string][]Doc{
		Users:           data.Users,
		SensorData:      data.SensorData,
		Plans:           data.Plans,
		Recommendations: data.Recommendations,
		Feedback:        data.Feedback,
	}
	for _, collection := range collections {
		docs := batches[collection]
		if len(docs) == 0 {
			continue
		}
		if err := s.InsertMany(collection, docs); err != nil {
			return fmt.Errorf("import %s: %w", collection, err)
		}
	}
	return nil
}

// MarshalExport renders an export in the requested format ("json" or "yaml").
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalExport parses an export in the requested format.
func UnmarshalExport(raw []byte, format string) (*ExportData, error) {
	var data ExportData
	switch format {
	case "json":
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse JSON export: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse YAML export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
	return &data, nil
}
