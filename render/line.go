package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/harolpc/go-linezone"
	"gocv.io/x/gocv"
)

// LineStyle defines the parameters used for rendering a counting line and
// its count labels
type LineStyle struct {
	// Color of the line, endpoint markers and label plates
	Color color.RGBA
	// Thickness of the line
	Thickness int
	// EndpointRadius is the radius of the filled circles drawn on the
	// lines endpoints
	EndpointRadius int
	// TextOffset is the distance of the count labels from the line
	// midpoint, in units of text height
	TextOffset float64
	// InText and OutText are the count label prefixes
	InText  string
	OutText string
}

// DefaultLineStyle returns default line rendering settings
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color:          Green,
		Thickness:      2,
		EndpointRadius: 5,
		TextOffset:     1.5,
		InText:         "in",
		OutText:        "out",
	}
}

// LineZoneOverlay draws the counting line with endpoint markers and the
// running in/out totals onto the image.  The "in" label is placed on one
// side of the line midpoint and the "out" label on the other
func LineZoneOverlay(img *gocv.Mat, zone *linezone.LineZone, style LineStyle,
	font Font) {

	start := image.Pt(int(zone.Start().X), int(zone.Start().Y))
	end := image.Pt(int(zone.End().X), int(zone.End().Y))

	// draw the line and endpoint markers
	gocv.Line(img, start, end, style.Color, style.Thickness)
	gocv.Circle(img, start, style.EndpointRadius, style.Color, -1)
	gocv.Circle(img, end, style.EndpointRadius, style.Color, -1)

	inText := fmt.Sprintf("%s: %d", style.InText, zone.InCount())
	outText := fmt.Sprintf("%s: %d", style.OutText, zone.OutCount())

	inSize := gocv.GetTextSize(inText, font.Face, font.Scale, font.Thickness)
	outSize := gocv.GetTextSize(outText, font.Face, font.Scale, font.Thickness)

	// center both labels on the line midpoint, offset the in label above
	// and the out label below
	inX := (start.X + end.X - inSize.X) / 2
	inY := (start.Y+end.Y+inSize.Y)/2 -
		int(style.TextOffset*float64(inSize.Y))

	outX := (start.X + end.X - outSize.X) / 2
	outY := (start.Y+end.Y+outSize.Y)/2 +
		int(style.TextOffset*float64(outSize.Y))

	drawLabelPlate(img, inText, image.Pt(inX, inY), inSize, style.Color, font)
	drawLabelPlate(img, outText, image.Pt(outX, outY), outSize, style.Color, font)
}

// drawLabelPlate draws text at the given baseline position over a filled
// padded background rectangle
func drawLabelPlate(img *gocv.Mat, text string, pos image.Point,
	size image.Point, bg color.RGBA, font Font) {

	plate := image.Rect(
		pos.X-font.LeftPad,
		pos.Y-size.Y-font.TopPad,
		pos.X+size.X+font.RightPad,
		pos.Y+font.BottomPad,
	)

	gocv.Rectangle(img, plate, bg, -1)

	gocv.PutTextWithParams(img, text, pos, font.Face, font.Scale,
		font.Color, font.Thickness, font.LineType, false)
}

// PolygonZoneOverlay draws the region outline and its current occupancy
// count onto the image
func PolygonZoneOverlay(img *gocv.Mat, zone *linezone.PolygonZone,
	style LineStyle, font Font) {

	points := zone.Polygon()

	if len(points) < 3 {
		return
	}

	// draw the polygon edges
	var cx, cy int

	for i := range points {

		next := (i + 1) % len(points)

		gocv.Line(img,
			image.Pt(int(points[i].X), int(points[i].Y)),
			image.Pt(int(points[next].X), int(points[next].Y)),
			style.Color, style.Thickness)

		cx += int(points[i].X)
		cy += int(points[i].Y)
	}

	// occupancy label at the polygon centroid
	cx /= len(points)
	cy /= len(points)

	text := fmt.Sprintf("%d", zone.CurrentCount())

	if zone.Name() != "" {
		text = fmt.Sprintf("%s: %d", zone.Name(), zone.CurrentCount())
	}

	size := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	drawLabelPlate(img, text, image.Pt(cx-size.X/2, cy+size.Y/2), size,
		style.Color, font)
}
