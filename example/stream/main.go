package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gocv.io/x/gocv"

	"github.com/harolpc/go-linezone"
	"github.com/harolpc/go-linezone/metrics"
	"github.com/harolpc/go-linezone/render"
)

var (
	// FPS is the number of FPS to simulate
	FPS         = 30
	FPSinterval = time.Duration(float64(time.Second) / float64(FPS))
)

// ResultFrame is a struct to wrap the gocv byte buffer and error result
type ResultFrame struct {
	Buf *gocv.NativeByteBuffer
	Err error
}

// Demo defines the struct for running the line counting stream demo
type Demo struct {
	// vidBuffer buffers the video frames into memory
	vidBuffer []gocv.Mat
	// source replays the tracked detections recorded for the video
	source *linezone.ReplaySource
	// lineZones are the counting lines from the configuration
	lineZones []*linezone.LineZone
	// polyZones are the occupancy regions from the configuration
	polyZones []*linezone.PolygonZone
	// trail keeps anchor point history for drawing motion trails
	trail *linezone.Trail
	// labels are the class names the detection model was trained on
	labels []string
	// zoneMetrics exports counting state to Prometheus
	zoneMetrics *metrics.ZoneMetrics
}

// NewDemo returns an instance of Demo, a streaming HTTP server showing
// video with line crossing counts overlaid
func NewDemo(vidFile, cfgFile, detFile, labelFile string) (*Demo, error) {

	d := &Demo{}

	err := d.bufferVideo(vidFile)

	if err != nil {
		return nil, fmt.Errorf("Error buffering video: %w", err)
	}

	cfg, err := linezone.LoadConfig(cfgFile)

	if err != nil {
		return nil, fmt.Errorf("Error loading config: %w", err)
	}

	d.lineZones, err = cfg.BuildLineZones()

	if err != nil {
		return nil, fmt.Errorf("Error building line zones: %w", err)
	}

	d.polyZones, err = cfg.BuildPolygonZones()

	if err != nil {
		return nil, fmt.Errorf("Error building polygon zones: %w", err)
	}

	d.trail = linezone.NewTrail(90, cfg.ZoneParams().Anchor)

	d.source, err = linezone.LoadReplay(detFile)

	if err != nil {
		return nil, fmt.Errorf("Error loading detections: %w", err)
	}

	if labelFile != "" {
		d.labels, err = linezone.LoadLabels(labelFile)

		if err != nil {
			return nil, fmt.Errorf("Error loading labels: %w", err)
		}
	}

	d.zoneMetrics = metrics.NewZoneMetrics(prometheus.DefaultRegisterer)

	return d, nil
}

// bufferVideo reads in the video frames and saves them to a buffer
func (d *Demo) bufferVideo(vidFile string) error {

	// open handle to read frames of video file
	video, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		return err
	}

	defer video.Close()

	d.vidBuffer = make([]gocv.Mat, 0)

	for {
		img := gocv.NewMat()

		// read the next frame from the video
		if ok := video.Read(&img); !ok {
			// reached last video frame
			break
		}

		if img.Empty() {
			continue
		}

		// push frame onto buffer
		d.vidBuffer = append(d.vidBuffer, img)
	}

	return nil
}

// reset restarts the replay and clears all zone state for the next loop of
// the video
func (d *Demo) reset() {
	d.source.Rewind()
	d.trail.Reset()
	d.zoneMetrics.Reset()

	for _, zone := range d.lineZones {
		zone.Reset()
	}

	for _, zone := range d.polyZones {
		zone.Reset()
	}
}

// Stream is the HTTP handler function used to stream video frames to
// browser.  Zone state is owned by the Demo so the handler expects a single
// client at a time
func (d *Demo) Stream(w http.ResponseWriter, r *http.Request) {

	log.Printf("New client connection established\n")

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	// pointer to position in video buffer
	frameNum := -1

	ticker := time.NewTicker(FPSinterval)
	defer ticker.Stop()

	// chan to receive processed frames
	recvFrame := make(chan ResultFrame, 30)

loop:
	for {
		select {
		case <-r.Context().Done():
			log.Printf("Client disconnected\n")
			break loop

		// simulate reading a 30FPS web camera
		case <-ticker.C:

			// increment pointer to next image in the video buffer
			frameNum++
			if frameNum > len(d.vidBuffer)-1 {
				// last frame reached so loop back to start of video
				frameNum = 0
				d.reset()
			}

			objects, ok := d.source.Next()

			if !ok {
				objects = nil
			}

			// process synchronously so zone and trail state is only
			// mutated from this loop, the buffered channel hands the
			// encoded frame to the next select iteration
			d.ProcessFrame(d.vidBuffer[frameNum], objects, recvFrame, frameNum)

		case buf := <-recvFrame:

			if buf.Err != nil {
				log.Printf("Error occured during ProcessFrame: %v", buf.Err)

			} else {
				// Write the image to the response writer
				w.Write([]byte("--frame\r\n"))
				w.Write([]byte("Content-Type: image/jpeg\r\n\r\n"))
				w.Write(buf.Buf.GetBytes())
				w.Write([]byte("\r\n"))

				// Flush the buffer
				flusher, ok := w.(http.Flusher)
				if ok {
					flusher.Flush()
				}
			}

			buf.Buf.Close()
		}
	}
}

// ProcessFrame triggers the zones with one frames objects, annotates the
// image and returns the result encoded as a JPG file
func (d *Demo) ProcessFrame(img gocv.Mat, objects []linezone.Object,
	retChan chan<- ResultFrame, frameNum int) {

	triggerStart := time.Now()

	for _, zone := range d.lineZones {
		zone.Trigger(objects)
		d.zoneMetrics.ObserveLine(zone)
	}

	for _, zone := range d.polyZones {
		zone.Trigger(objects)
		d.zoneMetrics.ObservePolygon(zone)
	}

	d.zoneMetrics.ObserveTriggerDuration(time.Since(triggerStart))

	for _, obj := range objects {
		d.trail.Add(obj)
	}

	// copy the source image and annotate the copy
	resImg := gocv.NewMat()
	defer resImg.Close()
	img.CopyTo(&resImg)

	font := render.DefaultFont()

	render.TrackedBoxes(&resImg, objects, d.labels, font, 1)
	render.Trails(&resImg, objects, d.trail, render.DefaultTrailStyle())

	for _, zone := range d.lineZones {
		render.LineZoneOverlay(&resImg, zone, render.DefaultLineStyle(), font)
	}

	for _, zone := range d.polyZones {
		render.PolygonZoneOverlay(&resImg, zone, render.DefaultLineStyle(), font)
	}

	// Encode the image to JPEG format
	buf, err := gocv.IMEncode(".jpg", resImg)

	retChan <- ResultFrame{
		Buf: buf,
		Err: err,
	}
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	cfgFile := flag.String("c", "config.json", "JSON file defining the counting zones")
	vidFile := flag.String("v", "traffic.mp4", "Video file to stream")
	detFile := flag.String("d", "detections.json", "JSON file of per frame tracked detections")
	labelFile := flag.String("l", "", "Optional text file containing model class labels")
	httpAddr := flag.String("a", "localhost:8080", "HTTP Address to run server on, format address:port")

	flag.Parse()

	demo, err := NewDemo(*vidFile, *cfgFile, *detFile, *labelFile)

	if err != nil {
		log.Fatalf("Error creating demo: %v", err)
	}

	http.HandleFunc("/stream", demo.Stream)
	http.Handle("/metrics", promhttp.Handler())

	// start http server
	log.Println(fmt.Sprintf("Open browser and view video at http://%s/stream, "+
		"metrics at http://%s/metrics", *httpAddr, *httpAddr))
	log.Fatal(http.ListenAndServe(*httpAddr, nil))
}
