package linezone

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadReplay tests loading and replaying recorded detections
func TestLoadReplay(t *testing.T) {

	file := filepath.Join(t.TempDir(), "detections.json")

	data := `[
		[
			{"box": [40, 60, 60, 100], "label": 2, "prob": 0.91, "track_id": 1},
			{"box": [140, 60, 160, 100], "label": 0, "prob": 0.45}
		],
		[],
		[
			{"box": [45, 60, 65, 100], "label": 2, "prob": 0.93, "track_id": 1}
		]
	]`

	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatalf("error writing detections file: %v", err)
	}

	source, err := LoadReplay(file)

	if err != nil {
		t.Fatalf("error loading replay: %v", err)
	}

	if source.Len() != 3 {
		t.Fatalf("expected 3 frames, got %d", source.Len())
	}

	frame, ok := source.Next()

	if !ok || len(frame) != 2 {
		t.Fatalf("expected first frame with 2 objects, got %d ok=%v",
			len(frame), ok)
	}

	if frame[0].TrackID != 1 || frame[0].Label != 2 ||
		frame[0].Box != NewBox(40, 60, 60, 100) {
		t.Errorf("unexpected first object: %+v", frame[0])
	}

	// absent track_id means no identity
	if frame[1].HasTrack() {
		t.Errorf("expected second object to carry no identity")
	}

	// empty frame is legal
	frame, ok = source.Next()

	if !ok || len(frame) != 0 {
		t.Errorf("expected empty second frame, got %d objects ok=%v",
			len(frame), ok)
	}

	source.Next()

	if _, ok := source.Next(); ok {
		t.Errorf("expected replay exhausted after 3 frames")
	}

	source.Rewind()

	if frame, ok := source.Next(); !ok || len(frame) != 2 {
		t.Errorf("expected rewind to restart replay")
	}
}

// TestLoadReplayErrors tests failure paths of replay loading
func TestLoadReplayErrors(t *testing.T) {

	if _, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing detections file")
	}

	file := filepath.Join(t.TempDir(), "bad.json")

	if err := os.WriteFile(file, []byte("{not json"), 0644); err != nil {
		t.Fatalf("error writing detections file: %v", err)
	}

	if _, err := LoadReplay(file); err == nil {
		t.Errorf("expected error for malformed detections file")
	}
}
