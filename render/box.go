package render

import (
	"fmt"
	"image"

	"github.com/harolpc/go-linezone"
	"gocv.io/x/gocv"
)

// boxLabel holds the precalculated rendering details of a box text label
type boxLabel struct {
	rect    image.Rectangle
	text    string
	textPos image.Point
	id      int64
}

// TrackedBoxes renders the bounding boxes of tracked objects with a
// "#id label" text plate above each box.  Objects without a tracker
// identity are drawn without a label
func TrackedBoxes(img *gocv.Mat, objects []linezone.Object,
	classNames []string, font Font, lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0)

	for _, obj := range objects {

		// untracked detections get a fixed color, identity colors only
		// apply once the tracker has assigned an ID
		useClr := White

		if obj.HasTrack() {
			useClr = TrackColor(obj.TrackID)
		}

		// draw rectangle around the object
		rect := image.Rect(int(obj.Box.Left), int(obj.Box.Top),
			int(obj.Box.Right), int(obj.Box.Bottom))
		gocv.Rectangle(img, rect, useClr, lineThickness)

		if !obj.HasTrack() {
			continue
		}

		// create text for label
		name := ""

		if obj.Label >= 0 && obj.Label < len(classNames) {
			name = classNames[obj.Label]
		}

		text := fmt.Sprintf("#%d %s", obj.TrackID, name)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		left := int(obj.Box.Left)
		top := int(obj.Box.Top)

		// create box for placing text on
		bRect := image.Rect(left-lineThickness/2,
			top-textSize.Y-font.TopPad-font.BottomPad,
			left+textSize.X+font.LeftPad+font.RightPad, top)

		// record label rendering details
		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			text:    text,
			textPos: image.Pt(left+font.LeftPad, top-font.BottomPad),
			id:      obj.TrackID,
		})
	}

	// draw all precalculated box labels last so they are the top most
	// layer on the image
	for _, box := range boxLabels {
		gocv.Rectangle(img, box.rect, TrackColor(box.id), -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
