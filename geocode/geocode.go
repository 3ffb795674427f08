package geocode

import (
	"context"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/paulmach/orb"
	"googlemaps.github.io/maps"

	"go-firewatch/regions"
	"go-firewatch/types"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

const kmPerDegree = 111.0

// ResolveRegion geocodes a free-form region name into a selectable Region.
// The result carries no dataset flags; the remote service decides what it
// can actually compute for an off-catalog area.
func ResolveRegion(ctx context.Context, name string) (types.Region, error) {
	client, err := InitMapsClient()
	if err != nil {
		return types.Region{}, err
	}

	results, err := client.Geocode(ctx, &maps.GeocodingRequest{Address: name})
	if err != nil {
		return types.Region{}, fmt.Errorf("geocoding %q: %w", name, err)
	}
	if len(results) == 0 {
		return types.Region{}, fmt.Errorf("no geocoding result for %q", name)
	}

	top := results[0]
	center := orb.Point{top.Geometry.Location.Lng, top.Geometry.Location.Lat}

	vp := top.Geometry.Viewport
	bounds := orb.Bound{
		Min: orb.Point{vp.SouthWest.Lng, vp.SouthWest.Lat},
		Max: orb.Point{vp.NorthEast.Lng, vp.NorthEast.Lat},
	}

	// Rough area from the viewport, longitude scaled by latitude.
	widthKM := (bounds.Max.Lon() - bounds.Min.Lon()) * kmPerDegree * math.Cos(center.Lat()*math.Pi/180)
	heightKM := (bounds.Max.Lat() - bounds.Min.Lat()) * kmPerDegree

	state := ""
	for _, comp := range top.AddressComponents {
		for _, t := range comp.Types {
			if t == "administrative_area_level_1" {
				state = comp.LongName
			}
		}
	}

	return types.Region{
		ID:      regions.Slug(name),
		Name:    top.FormattedAddress,
		State:   state,
		AreaKM2: math.Abs(widthKM * heightKM),
		Bounds:  bounds,
		Center:  center,
	}, nil
}
