// Package testsupport holds fixture and golden-file helpers shared by tests.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldkit/pkg/definition"
	"github.com/goliatone/go-fieldkit/pkg/model"
)

// LoadStore loads every definition document under dir. Testing helpers fail
// the test on error to keep fixtures concise.
func LoadStore(t *testing.T, dir string) *definition.Store {
	t.Helper()

	store, err := LoadStoreFromDir(dir)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

// LoadStoreFromDir returns a Store without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadStoreFromDir(dir string) (*definition.Store, error) {
	if dir == "" {
		return nil, errors.New("testsupport: fixture dir is required")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("testsupport: fixture dir: %w", err)
	}
	return definition.LoadFS(os.DirFS(dir))
}

// MustLoadModel loads dir and returns the named model.
func MustLoadModel(t *testing.T, dir, name string) *model.Definition {
	t.Helper()

	def, ok := LoadStore(t, dir).Model(name)
	if !ok {
		t.Fatalf("model %q not found in %s", name, dir)
	}
	return def
}

// MustLoadJSON reads a JSON golden file into a generic value.
func MustLoadJSON(t *testing.T, path string) any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// JSONValue round-trips value through encoding/json so typed maps and
// numbers compare equal to a decoded golden file.
func JSONValue(t *testing.T, value any) any {
	t.Helper()

	payload, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("unmarshal value: %v", err)
	}
	return out
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
// Returns true if the golden was written.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares value with the JSON golden at path, updating the
// golden first when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, value any) {
	t.Helper()

	WriteGolden(t, path, value)
	want := MustLoadJSON(t, path)
	if diff := CompareGolden(want, JSONValue(t, value)); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
