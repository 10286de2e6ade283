package main

import (
	"flag"
	"fmt"
	"log"

	"gocv.io/x/gocv"

	"github.com/harolpc/go-linezone"
	"github.com/harolpc/go-linezone/render"
)

// Counter defines the struct for running the offline line counting demo
type Counter struct {
	// source replays the tracked detections recorded for the video
	source *linezone.ReplaySource
	// lineZones are the counting lines from the configuration
	lineZones []*linezone.LineZone
	// polyZones are the occupancy regions from the configuration
	polyZones []*linezone.PolygonZone
	// stats accumulates crossing rates per line zone
	stats []*linezone.FlowStats
	// trail keeps anchor point history for drawing motion trails
	trail *linezone.Trail
	// labels are the class names the detection model was trained on
	labels []string
}

// NewCounter builds the counting zones and loads the recorded detections
func NewCounter(cfgFile, detFile, labelFile string, fps float64) (*Counter, error) {

	cfg, err := linezone.LoadConfig(cfgFile)

	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	c := &Counter{
		trail: linezone.NewTrail(90, cfg.ZoneParams().Anchor),
	}

	c.lineZones, err = cfg.BuildLineZones()

	if err != nil {
		return nil, fmt.Errorf("error building line zones: %w", err)
	}

	c.polyZones, err = cfg.BuildPolygonZones()

	if err != nil {
		return nil, fmt.Errorf("error building polygon zones: %w", err)
	}

	for range c.lineZones {
		c.stats = append(c.stats, linezone.NewFlowStats(fps))
	}

	c.source, err = linezone.LoadReplay(detFile)

	if err != nil {
		return nil, fmt.Errorf("error loading detections: %w", err)
	}

	if labelFile != "" {
		c.labels, err = linezone.LoadLabels(labelFile)

		if err != nil {
			return nil, fmt.Errorf("error loading labels: %w", err)
		}
	}

	return c, nil
}

// ProcessFrame triggers all zones with one frames objects and annotates
// the image
func (c *Counter) ProcessFrame(img *gocv.Mat, objects []linezone.Object) {

	for _, zone := range c.lineZones {
		zone.Trigger(objects)
	}

	for _, zone := range c.polyZones {
		zone.Trigger(objects)
	}

	for i, zone := range c.lineZones {
		c.stats[i].Observe(zone)
	}

	for _, obj := range objects {
		c.trail.Add(obj)
	}

	// annotate the frame
	font := render.DefaultFont()

	render.TrackedBoxes(img, objects, c.labels, font, 1)
	render.Trails(img, objects, c.trail, render.DefaultTrailStyle())

	for _, zone := range c.lineZones {
		render.LineZoneOverlay(img, zone, render.DefaultLineStyle(), font)
	}

	for _, zone := range c.polyZones {
		render.PolygonZoneOverlay(img, zone, render.DefaultLineStyle(), font)
	}
}

// PrintTotals logs the final counts and crossing rates for all zones
func (c *Counter) PrintTotals() {

	for i, zone := range c.lineZones {

		in := c.stats[i].In()
		out := c.stats[i].Out()

		log.Printf("%s: in=%d (%.1f/min), out=%d (%.1f/min)",
			zone.Name(), zone.InCount(), in.PerMinute,
			zone.OutCount(), out.PerMinute)
	}

	for _, zone := range c.polyZones {
		log.Printf("%s: unique objects seen=%d", zone.Name(), zone.SeenCount())
	}
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	cfgFile := flag.String("c", "config.json", "JSON file defining the counting zones")
	vidFile := flag.String("v", "traffic.mp4", "Video file the detections were recorded from")
	detFile := flag.String("d", "detections.json", "JSON file of per frame tracked detections")
	outFile := flag.String("o", "annotated.mp4", "Video file to write annotated output to")
	labelFile := flag.String("l", "", "Optional text file containing model class labels")

	flag.Parse()

	// open handle to read frames of video file
	video, err := gocv.VideoCaptureFile(*vidFile)

	if err != nil {
		log.Fatalf("Error opening video file: %v", err)
	}

	defer video.Close()

	fps := video.Get(gocv.VideoCaptureFPS)
	width := int(video.Get(gocv.VideoCaptureFrameWidth))
	height := int(video.Get(gocv.VideoCaptureFrameHeight))

	counter, err := NewCounter(*cfgFile, *detFile, *labelFile, fps)

	if err != nil {
		log.Fatalf("Error creating counter: %v", err)
	}

	writer, err := gocv.VideoWriterFile(*outFile, "mp4v", fps, width, height, true)

	if err != nil {
		log.Fatalf("Error opening video writer: %v", err)
	}

	defer writer.Close()

	img := gocv.NewMat()
	defer img.Close()

	frameNum := 0

	for {
		// read the next frame from the video
		if ok := video.Read(&img); !ok {
			// reached last video frame
			break
		}

		if img.Empty() {
			continue
		}

		objects, ok := counter.source.Next()

		if !ok {
			log.Printf("Detections ended at frame %d, stopping", frameNum)
			break
		}

		counter.ProcessFrame(&img, objects)

		if err := writer.Write(img); err != nil {
			log.Fatalf("Error writing frame %d: %v", frameNum, err)
		}

		frameNum++
	}

	log.Printf("Processed %d frames", frameNum)
	counter.PrintTotals()
}
