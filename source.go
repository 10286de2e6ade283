package linezone

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source produces the tracked objects for successive video frames.  It is
// the narrow interface between an external detector/tracker and the zone
// counters, enabling deterministic replays in place of a live tracker
type Source interface {
	// Next returns the tracked objects for the next frame.  The second
	// return value is false when no frames remain
	Next() ([]Object, bool)
}

// replayObject is the JSON wire form of a tracked detection
type replayObject struct {
	// Box is the bounding box as [left, top, right, bottom]
	Box [4]float32 `json:"box"`
	// Label is the class label index
	Label int `json:"label"`
	// Prob is the detection confidence
	Prob float32 `json:"prob"`
	// TrackID is the tracker identity, zero or absent for unconfirmed
	// detections
	TrackID int64 `json:"track_id"`
}

// ReplaySource replays per frame tracked detections previously recorded to
// a JSON file, one array of objects per frame.  It implements Source
type ReplaySource struct {
	frames [][]Object
	pos    int
}

// LoadReplay reads recorded tracked detections from the given JSON file.
// The file holds an array of frames, each frame an array of objects with
// "box", "label", "prob" and "track_id" fields
func LoadReplay(file string) (*ReplaySource, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading detections file: %w", err)
	}

	var raw [][]replayObject

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing detections file: %w", err)
	}

	frames := make([][]Object, len(raw))

	for i, rawFrame := range raw {

		frame := make([]Object, 0, len(rawFrame))

		for _, ro := range rawFrame {
			frame = append(frame, Object{
				Box:     NewBox(ro.Box[0], ro.Box[1], ro.Box[2], ro.Box[3]),
				Label:   ro.Label,
				Prob:    ro.Prob,
				TrackID: ro.TrackID,
			})
		}

		frames[i] = frame
	}

	return &ReplaySource{frames: frames}, nil
}

// Next returns the tracked objects for the next frame
func (r *ReplaySource) Next() ([]Object, bool) {

	if r.pos >= len(r.frames) {
		return nil, false
	}

	frame := r.frames[r.pos]
	r.pos++

	return frame, true
}

// Rewind restarts the replay from the first frame
func (r *ReplaySource) Rewind() {
	r.pos = 0
}

// Len returns the number of recorded frames
func (r *ReplaySource) Len() int {
	return len(r.frames)
}
