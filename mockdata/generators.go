package mockdata

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"go-firewatch/types"
)

const (
	riskZoneCount = 25

	// Threshold buckets for the classifying draw r in [0,1).
	highThreshold     = 0.6
	moderateThreshold = 0.3

	zoneJitterDeg     = 0.3 // max offset per axis around the region center
	minZoneConfidence = 0.65

	pointsPerStep     = 6    // points emitted per hour of time step
	stepJitterPerHour = 0.06 // jitter radius grows with the time step
	minIntensity      = 0.2
)

// NewRand returns a time-seeded source for callers that do not need
// reproducible output.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func jitter(rng *rand.Rand, max float64) float64 {
	return (rng.Float64()*2 - 1) * max
}

// GenerateRiskZones fabricates a batch of risk zones scattered around the
// region center.
func GenerateRiskZones(rng *rand.Rand, center orb.Point) []types.RiskZone {
	zones := make([]types.RiskZone, 0, riskZoneCount)
	for i := 0; i < riskZoneCount; i++ {
		r := rng.Float64()
		level := types.RiskLow
		if r > highThreshold {
			level = types.RiskHigh
		} else if r > moderateThreshold {
			level = types.RiskModerate
		}

		zones = append(zones, types.RiskZone{
			ID:         uuid.NewString(),
			Lat:        center.Lat() + jitter(rng, zoneJitterDeg),
			Long:       center.Lon() + jitter(rng, zoneJitterDeg),
			Level:      level,
			Confidence: minZoneConfidence + rng.Float64()*(1.0-minZoneConfidence),
		})
	}
	return zones
}

// GenerateSpreadPoints fabricates the per-time-step spread front: timeStep×6
// points per step, scattered in a radius that grows with the step.
func GenerateSpreadPoints(rng *rand.Rand, center orb.Point, timeSteps []int) map[int][]types.SpreadPoint {
	spread := make(map[int][]types.SpreadPoint, len(timeSteps))
	for _, step := range timeSteps {
		radius := float64(step) * stepJitterPerHour
		points := make([]types.SpreadPoint, 0, step*pointsPerStep)
		for i := 0; i < step*pointsPerStep; i++ {
			points = append(points, types.SpreadPoint{
				Lat:       center.Lat() + jitter(rng, radius),
				Long:      center.Lon() + jitter(rng, radius),
				Intensity: minIntensity + rng.Float64()*(1.0-minIntensity),
				TimeStep:  step,
			})
		}
		spread[step] = points
	}
	return spread
}

// GeneratePrediction assembles a full mock prediction for a region. The
// area split is derived from the zone counts so high+moderate+low always
// sums to the region total.
func GeneratePrediction(rng *rand.Rand, region types.Region) types.PredictionData {
	zones := GenerateRiskZones(rng, region.Center)

	var high, moderate int
	var confSum float64
	for _, z := range zones {
		switch z.Level {
		case types.RiskHigh:
			high++
		case types.RiskModerate:
			moderate++
		}
		confSum += z.Confidence
	}

	highArea := region.AreaKM2 * float64(high) / float64(len(zones))
	moderateArea := region.AreaKM2 * float64(moderate) / float64(len(zones))

	return types.PredictionData{
		RegionID:            region.ID,
		GeneratedAt:         time.Now().UTC().Format(time.RFC3339),
		Zones:               zones,
		Confidence:          confSum / float64(len(zones)),
		OverallRiskLevel:    DominantLevel(zones),
		TotalAreaKM2:        region.AreaKM2,
		HighRiskAreaKM2:     highArea,
		ModerateRiskAreaKM2: moderateArea,
		LowRiskAreaKM2:      region.AreaKM2 - highArea - moderateArea,
	}
}

// GenerateSimulation assembles a full mock spread simulation. Burned area is
// cumulative over the step sequence; spread rate is the per-step average.
func GenerateSimulation(rng *rand.Rand, region types.Region) types.SimulationData {
	steps := types.DefaultTimeSteps
	burned := make([]float64, 0, len(steps))
	rates := make([]float64, 0, len(steps))

	area := 0.0
	for _, step := range steps {
		area += float64(step) * (2 + rng.Float64()*6)
		burned = append(burned, area)
		rates = append(rates, area/float64(step))
	}

	return types.SimulationData{
		RegionID:      region.ID,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Confidence:    minZoneConfidence + rng.Float64()*(1.0-minZoneConfidence),
		TimeSteps:     steps,
		SpreadByStep:  GenerateSpreadPoints(rng, region.Center, steps),
		BurnedAreaKM2: burned,
		SpreadRateKMH: rates,
	}
}

// DominantLevel picks the most frequent risk level in a zone batch,
// breaking ties toward the higher level.
func DominantLevel(zones []types.RiskZone) types.RiskLevel {
	counts := map[types.RiskLevel]int{}
	for _, z := range zones {
		counts[z.Level]++
	}

	dominant := types.RiskLow
	max := counts[types.RiskLow]
	if counts[types.RiskModerate] >= max {
		dominant = types.RiskModerate
		max = counts[types.RiskModerate]
	}
	if counts[types.RiskHigh] >= max {
		dominant = types.RiskHigh
	}
	return dominant
}
