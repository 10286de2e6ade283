package linezone

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLabels(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "labels.txt")

	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("writing labels file: %v", err)
	}

	return file
}

func TestLoadLabels(t *testing.T) {

	file := writeLabels(t, "# coco subset\nperson\n  bicycle \n\ncar\n")

	labels, err := LoadLabels(file)

	if err != nil {
		t.Fatalf("LoadLabels returned error: %v", err)
	}

	want := []string{"person", "bicycle", "car"}

	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}

	for i, w := range want {
		if labels[i] != w {
			t.Errorf("label %d: expected %q, got %q", i, w, labels[i])
		}
	}
}

func TestLoadLabelsErrors(t *testing.T) {

	// missing file
	if _, err := LoadLabels(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}

	// file with no usable labels
	file := writeLabels(t, "\n# comments only\n\n")

	if _, err := LoadLabels(file); err == nil {
		t.Errorf("expected error for file with no labels")
	}
}
