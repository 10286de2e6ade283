package linezone

import (
	"encoding/json"
	"fmt"
	"os"
)

// LineZoneConfig defines a single counting line in the configuration file
type LineZoneConfig struct {
	// Name identifies the line in overlays and metrics, optional
	Name string `json:"name"`
	// Start and End are the lines endpoints as [x, y] pixel coordinates
	Start [2]float32 `json:"start"`
	End   [2]float32 `json:"end"`
}

// PolygonZoneConfig defines a single occupancy region in the configuration
// file
type PolygonZoneConfig struct {
	// Name identifies the region in overlays and metrics, optional
	Name string `json:"name"`
	// Points are the polygon vertices as [x, y] pixel coordinates
	Points [][2]float32 `json:"points"`
}

// Config is the JSON configuration for a set of counting zones.  Each line
// produces its own independent counter pair with no shared state
type Config struct {
	// AnchorPoint is "center" or "bottom_center", defaults to bottom center
	AnchorPoint string `json:"anchor_point"`
	// GracePeriod in frames, defaults to DefaultGracePeriod if unset
	GracePeriod *int `json:"grace_period"`
	// Margin in pixels, defaults to DefaultMargin if unset
	Margin *float32 `json:"margin"`
	// MaxIdleFrames before crossing records are evicted, defaults to
	// DefaultMaxIdleFrames if unset
	MaxIdleFrames int `json:"max_idle_frames"`
	// LineZones are the counting lines
	LineZones []LineZoneConfig `json:"line_zones"`
	// PolygonZones are the occupancy regions
	PolygonZones []PolygonZoneConfig `json:"polygon_zones"`
}

// LoadConfig reads the zone configuration from the given JSON file
func LoadConfig(file string) (*Config, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &cfg, nil
}

// ZoneParams resolves the configurations anchor policy, margin, grace
// period and eviction settings, applying defaults for unset fields
func (c *Config) ZoneParams() ZoneParams {

	params := DefaultZoneParams()
	params.Anchor = AnchorPolicyFromString(c.AnchorPoint)
	params.MaxIdleFrames = c.MaxIdleFrames

	if c.GracePeriod != nil {
		params.GracePeriod = *c.GracePeriod
	}

	if c.Margin != nil {
		params.Margin = *c.Margin
	}

	return params
}

// BuildLineZones constructs one independent LineZone per configured line.
// Unnamed lines are given a sequential "line-N" name
func (c *Config) BuildLineZones() ([]*LineZone, error) {

	params := c.ZoneParams()
	zones := make([]*LineZone, 0, len(c.LineZones))

	for i, lz := range c.LineZones {

		zone, err := NewLineZone(
			Pt(lz.Start[0], lz.Start[1]),
			Pt(lz.End[0], lz.End[1]),
			params,
		)

		if err != nil {
			return nil, fmt.Errorf("error building line zone %d: %w", i, err)
		}

		name := lz.Name

		if name == "" {
			name = fmt.Sprintf("line-%d", i)
		}

		zone.SetName(name)
		zones = append(zones, zone)
	}

	return zones, nil
}

// BuildPolygonZones constructs one independent PolygonZone per configured
// region.  Unnamed regions are given a sequential "region-N" name
func (c *Config) BuildPolygonZones() ([]*PolygonZone, error) {

	params := c.ZoneParams()
	zones := make([]*PolygonZone, 0, len(c.PolygonZones))

	for i, pz := range c.PolygonZones {

		points := make([]Point, 0, len(pz.Points))

		for _, pt := range pz.Points {
			points = append(points, Pt(pt[0], pt[1]))
		}

		zone, err := NewPolygonZone(points, params)

		if err != nil {
			return nil, fmt.Errorf("error building polygon zone %d: %w", i, err)
		}

		name := pz.Name

		if name == "" {
			name = fmt.Sprintf("region-%d", i)
		}

		zone.SetName(name)
		zones = append(zones, zone)
	}

	return zones, nil
}
