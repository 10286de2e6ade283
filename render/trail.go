package render

import (
	"image"
	"image/color"

	"github.com/harolpc/go-linezone"
	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the end point circle should be
	// the same color as that of the bounding box.  If set to false then
	// use the color specified at CircleColor
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      false,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    true,
		CircleColor:   Pink,
		CircleRadius:  3,
	}
}

// Trails draws the anchor point history of each tracked object on the
// source image
func Trails(img *gocv.Mat, objects []linezone.Object, trail *linezone.Trail,
	style TrailStyle) {

	for _, obj := range objects {

		if !obj.HasTrack() {
			continue
		}

		objClr := TrackColor(obj.TrackID)

		// determine style colors to use
		lineClr := objClr
		circleClr := objClr

		if !style.LineSame {
			lineClr = style.LineColor
		}

		if !style.CircleSame {
			circleClr = style.CircleColor
		}

		points := trail.Points(obj.TrackID)

		if len(points) < 2 {
			continue
		}

		for i := 1; i < len(points); i++ {
			// draw line segment of trail
			gocv.Line(img,
				image.Pt(int(points[i-1].X), int(points[i-1].Y)),
				image.Pt(int(points[i].X), int(points[i].Y)),
				lineClr, style.LineThickness,
			)

			if i == len(points)-1 {
				// draw circle on the current anchor point
				gocv.Circle(img, image.Pt(int(points[i].X), int(points[i].Y)),
					style.CircleRadius, circleClr, -1)
			}
		}
	}
}
