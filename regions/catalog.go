package regions

import (
	"strings"

	"github.com/paulmach/orb"

	"go-firewatch/types"
)

// halfExtentDeg is the half-width of the bounding box drawn around a
// region's center when the catalog entry carries no surveyed extent.
const halfExtentDeg = 0.5

func makeRegion(id, name, state string, areaKM2, lat, long float64, flags types.DatasetFlags) types.Region {
	center := orb.Point{long, lat}
	return types.Region{
		ID:      id,
		Name:    name,
		State:   state,
		AreaKM2: areaKM2,
		Bounds: orb.Bound{
			Min: orb.Point{long - halfExtentDeg, lat - halfExtentDeg},
			Max: orb.Point{long + halfExtentDeg, lat + halfExtentDeg},
		},
		Center:   center,
		Datasets: flags,
	}
}

var allDatasets = types.DatasetFlags{DEM: true, Weather: true, LULC: true, FireHistory: true}

// catalog is the fixed set of selectable regions.
var catalog = []types.Region{
	makeRegion("dehradun", "Dehradun District", "Uttarakhand", 3088, 30.3165, 78.0322, allDatasets),
	makeRegion("nainital", "Nainital District", "Uttarakhand", 4251, 29.3803, 79.4636, allDatasets),
	makeRegion("haridwar", "Haridwar District", "Uttarakhand", 2360, 29.9457, 78.1642, types.DatasetFlags{DEM: true, Weather: true, LULC: true}),
	makeRegion("pauri-garhwal", "Pauri Garhwal District", "Uttarakhand", 5329, 30.1469, 78.7808, allDatasets),
	makeRegion("almora", "Almora District", "Uttarakhand", 3139, 29.5971, 79.6591, types.DatasetFlags{DEM: true, Weather: true, FireHistory: true}),
	makeRegion("uttarkashi", "Uttarkashi District", "Uttarakhand", 8016, 30.7268, 78.4354, types.DatasetFlags{DEM: true, Weather: true}),
}

// All returns a copy of the catalog.
func All() []types.Region {
	out := make([]types.Region, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks a region up by its catalog identifier.
func ByID(id string) (types.Region, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return types.Region{}, false
}

// ByName looks a region up by display name, case-insensitively.
func ByName(name string) (types.Region, bool) {
	for _, r := range catalog {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return types.Region{}, false
}

// Resolve accepts either a catalog id or a display name.
func Resolve(idOrName string) (types.Region, bool) {
	if r, ok := ByID(idOrName); ok {
		return r, true
	}
	return ByName(idOrName)
}

// Slug converts a free-form region name to the identifier form the remote
// service uses for its data directories.
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(s), "_")
}
