/*
go-linezone counts tracked objects crossing user defined lines drawn over a
video stream.  It consumes per frame object detections carrying persistent
tracker identities, such as those produced by a ByteTrack style tracker, and
maintains in/out crossing totals per line with anti flicker protection.

The package also provides polygon region occupancy counting, crossing rate
statistics, a JSON configuration loader, and annotators in the render
subpackage for drawing zones and counts onto video frames using GoCV.

See example code and usage in the example subdirectory.
*/
package linezone
