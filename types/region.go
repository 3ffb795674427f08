package types

import "github.com/paulmach/orb"

// DatasetFlags records which remote datasets are known to exist for a region.
type DatasetFlags struct {
	DEM         bool `json:"dem"`
	Weather     bool `json:"weather"`
	LULC        bool `json:"lulc"`
	FireHistory bool `json:"fireHistory"`
}

// Region is a selectable administrative area. Entries come from the fixed
// catalog (or a geocode lookup for custom names) and are never mutated.
type Region struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	State    string       `json:"state"`
	AreaKM2  float64      `json:"areaKm2"`
	Bounds   orb.Bound    `json:"bounds"`
	Center   orb.Point    `json:"center"`
	Datasets DatasetFlags `json:"datasets"`
}
