package ministry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ministries.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeCatalogFile(t, `---
units:
  - name: Choir
    description: Leads worship through music
    meetingDay: Saturday
    leader: Sister Grace
  - name: Ushering
    description: Welcomes and seats the congregation
`)

	loader := NewLoader(path)
	units, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(units) != 2 {
		t.Fatalf("Load() returned %d units, want 2", len(units))
	}
	if units[0].Name != "Choir" {
		t.Errorf("units[0].Name = %q, want %q", units[0].Name, "Choir")
	}
	if units[0].Leader != "Sister Grace" {
		t.Errorf("units[0].Leader = %q, want %q", units[0].Leader, "Sister Grace")
	}
}

func TestLoaderLoadRejectsNamelessUnit(t *testing.T) {
	path := writeCatalogFile(t, `---
units:
  - description: Missing its name
`)

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with a nameless unit should return error")
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/ministries.yaml")
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	path := writeCatalogFile(t, "units: [unclosed")

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with invalid YAML should return error")
	}
}
