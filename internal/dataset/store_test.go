package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func validRaw(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(validDataset())
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(zap.NewNop().Sugar())

	if store.Loaded() {
		t.Error("fresh store should not be loaded")
	}
	if ds, version := store.Snapshot(); ds != nil || version != "" {
		t.Error("fresh store snapshot should be empty")
	}

	raw := validRaw(t)
	version, err := store.Replace(raw)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if version == "" {
		t.Fatal("Replace returned empty version")
	}

	ds, gotVersion := store.Snapshot()
	if ds == nil || gotVersion != version {
		t.Fatalf("Snapshot = (%v, %q), want dataset at version %q", ds, gotVersion, version)
	}
	if string(store.Raw()) != string(raw) {
		t.Error("Raw() should return the uploaded bytes verbatim")
	}

	// A second upload gets a fresh version.
	second, err := store.Replace(raw)
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	if second == version {
		t.Error("versions must differ between uploads")
	}
}

func TestStore_RejectsBadUploads(t *testing.T) {
	store := NewStore(zap.NewNop().Sugar())
	good, err := store.Replace(validRaw(t))
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "Not JSON", raw: `{"players": [`},
		{name: "Fails Validation", raw: `{"players":[],"matches":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.Replace([]byte(tt.raw)); err == nil {
				t.Fatal("Replace should have failed")
			}
			// The previously published dataset stays intact.
			ds, version := store.Snapshot()
			if ds == nil || version != good {
				t.Errorf("rejected upload disturbed the published dataset")
			}
		})
	}
}

func TestStore_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, validRaw(t), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(zap.NewNop().Sugar())
	version, err := store.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if version == "" || !store.Loaded() {
		t.Error("LoadFile should publish the dataset")
	}

	if _, err := store.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFile on a missing file should fail")
	}
}
