package types

type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
)

// RiskZone is a point location tagged with a qualitative fire-risk level.
type RiskZone struct {
	ID         string    `json:"id"`
	Lat        float64   `json:"lat"`
	Long       float64   `json:"long"`
	Level      RiskLevel `json:"riskLevel"`
	Confidence float64   `json:"confidence"` // [0,1]
}

// PredictionData is the aggregate risk result for one analysis run.
// Replaced wholesale on the next run, never partially mutated.
type PredictionData struct {
	RegionID            string     `json:"regionId"`
	GeneratedAt         string     `json:"generatedAt"` // RFC3339
	Zones               []RiskZone `json:"zones"`
	Confidence          float64    `json:"confidence"`
	OverallRiskLevel    RiskLevel  `json:"overallRiskLevel"`
	TotalAreaKM2        float64    `json:"totalAreaKm2"`
	HighRiskAreaKM2     float64    `json:"highRiskAreaKm2"`
	ModerateRiskAreaKM2 float64    `json:"moderateRiskAreaKm2"`
	LowRiskAreaKM2      float64    `json:"lowRiskAreaKm2"`
}
