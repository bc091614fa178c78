// ABOUTME: Tests for export/import round-trips and backend migration.
// ABOUTME: Uses temp sqlite and badger stores as endpoints.
package store

import (
	"path/filepath"
	"testing"
)

func seedStore(t *testing.T, st Store) {
	t.Helper()
	if err := st.InsertOne(Users, Doc{"user_id": "U123", "name": "Demo User"}); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := st.InsertMany(SensorData, []Doc{
		{"user_id": "U123", "metric_type": "HR", "value": 72.0, "recorded_at": "2026-08-30T08:00:00Z"},
		{"user_id": "U123", "metric_type": "Steps", "value": 6500.0, "recorded_at": "2026-08-30T20:00:00Z"},
	}); err != nil {
		t.Fatalf("seed sensordata: %v", err)
	}
	if err := st.InsertOne(Plans, Doc{"user_id": "U123", "date": "2026-08-30", "status": "Proposed"}); err != nil {
		t.Fatalf("seed plans: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			src, err := OpenSQLite(filepath.Join(t.TempDir(), "src.db"))
			if err != nil {
				t.Fatalf("open src: %v", err)
			}
			defer src.Close()
			seedStore(t, src)

			data, err := GetAllData(src)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			if len(data.SensorData) != 2 || len(data.Users) != 1 || len(data.Plans) != 1 {
				t.Fatalf("export counts = %d/%d/%d, want 1 user, 2 samples, 1 plan",
					len(data.Users), len(data.SensorData), len(data.Plans))
			}
			for _, doc := range data.SensorData {
				if _, ok := doc["_id"]; ok {
					t.Error("exported docs must not carry storage keys")
				}
			}

			raw, err := MarshalExport(data, format)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			parsed, err := UnmarshalExport(raw, format)
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			dst, err := OpenSQLite(filepath.Join(t.TempDir(), "dst.db"))
			if err != nil {
				t.Fatalf("open dst: %v", err)
			}
			defer dst.Close()

			if err := ImportData(dst, parsed); err != nil {
				t.Fatalf("import: %v", err)
			}

			docs, err := dst.FindMany(SensorData, Filter{"user_id": "U123"}, nil)
			if err != nil {
				t.Fatalf("find: %v", err)
			}
			if len(docs) != 2 {
				t.Errorf("imported samples = %d, want 2", len(docs))
			}
		})
	}
}

func TestMarshalExportUnknownFormat(t *testing.T) {
	if _, err := MarshalExport(&ExportData{}, "toml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := UnmarshalExport([]byte("{}"), "toml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestMigrateData(t *testing.T) {
	src, err := OpenSQLite(filepath.Join(t.TempDir(), "src.db"))
	if err != nil {
		t.Fatalf("open src: %v", err)
	}
	defer src.Close()
	seedStore(t, src)

	dst, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("open dst: %v", err)
	}
	defer dst.Close()

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if summary.Total() != 4 {
		t.Errorf("Total() = %d, want 4", summary.Total())
	}
	if summary.Counts[SensorData] != 2 {
		t.Errorf("sensordata count = %d, want 2", summary.Counts[SensorData])
	}

	doc, err := dst.FindOne(Users, Filter{"user_id": "U123"}, nil)
	if err != nil {
		t.Fatalf("find migrated user: %v", err)
	}
	if doc["name"] != "Demo User" {
		t.Errorf("name = %v, want Demo User", doc["name"])
	}
}
