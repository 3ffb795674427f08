package fireapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	defaultBaseURL = "http://localhost:8000"

	// Confidence substituted when the wire field is absent. The two call
	// paths historically used different defaults; both are kept until the
	// product settles on one.
	predictDefaultConfidence          = 0.9
	regionPredictionDefaultConfidence = 0.8
)

// Client talks to the remote forest-fire prediction service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client rooted at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewFromEnv reads FIREAPI_BASE_URL, falling back to the local service.
func NewFromEnv() *Client {
	base := os.Getenv("FIREAPI_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return New(base)
}

// apiError is the {detail}/{message} shape the service answers errors with.
type apiError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (e apiError) text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// PredictResponse is the /predict pipeline result.
type PredictResponse struct {
	Region         string `json:"region"`
	FirePrediction struct {
		Confidence *float64 `json:"confidence"`
	} `json:"fire_prediction"`
	SimulationResult struct {
		TotalBurnedArea []float64 `json:"totalBurnedArea"`
		SpreadRate      []float64 `json:"spreadRate"`
	} `json:"simulation_result"`
}

// Confidence returns the pipeline confidence, defaulted when absent.
func (p PredictResponse) Confidence() float64 {
	if p.FirePrediction.Confidence != nil {
		return *p.FirePrediction.Confidence
	}
	return predictDefaultConfidence
}

// RegionPrediction is the /api/prediction aggregate for one region.
type RegionPrediction struct {
	HighRiskAreaKM2     float64  `json:"high_risk_area_km2"`
	ModerateRiskAreaKM2 float64  `json:"moderate_risk_area_km2"`
	LowRiskAreaKM2      float64  `json:"low_risk_area_km2"`
	RawConfidence       *float64 `json:"confidence"`
	Timestamp           string   `json:"timestamp"`
	OverallRiskLevel    string   `json:"overall_risk_level"`
}

// Confidence returns the aggregate confidence, defaulted when absent.
func (p RegionPrediction) Confidence() float64 {
	if p.RawConfidence != nil {
		return *p.RawConfidence
	}
	return regionPredictionDefaultConfidence
}

// SegmentationResult describes the KMeans segmentation stage output.
type SegmentationResult struct {
	OK        bool   `json:"ok"`
	NClusters int    `json:"n_clusters"`
	MaskShape []int  `json:"mask_shape"`
	MaskPath  string `json:"mask_path"`
}

// PreprocessResult is the combined preprocessing + segmentation status.
type PreprocessResult struct {
	OK              bool               `json:"ok"`
	Region          string             `json:"region"`
	PreprocessedDir string             `json:"preprocessed_dir"`
	NFiles          int                `json:"n_files"`
	Detail          string             `json:"detail"`
	Message         string             `json:"message"`
	Segmentation    SegmentationResult `json:"segmentation"`
}

// Ping probes connectivity. The response body is logged and discarded.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/test", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	log.Printf("fireapi ping: %s %s", resp.Status, string(body))
	return nil
}

// Predict runs the full remote pipeline for a region name.
func (c *Client) Predict(ctx context.Context, region string) (*PredictResponse, error) {
	u := c.baseURL + "/predict?region=" + url.QueryEscape(region)
	var out PredictResponse
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegionPrediction fetches the precomputed risk aggregate for a region.
func (c *Client) RegionPrediction(ctx context.Context, region string) (*RegionPrediction, error) {
	u := c.baseURL + "/api/prediction?region=" + url.QueryEscape(region)
	var out RegionPrediction
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preprocess triggers the preprocessing + segmentation pipeline.
// An ok:false body counts as a failure even on a 200 status.
func (c *Client) Preprocess(ctx context.Context, regionID, regionName string) (*PreprocessResult, error) {
	payload, err := json.Marshal(map[string]string{
		"regionId":   regionID,
		"regionName": regionName,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/preprocess", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError("preprocess", resp)
	}

	var out PreprocessResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("preprocess: decoding response: %w", err)
	}
	if !out.OK {
		msg := out.Detail
		if msg == "" {
			msg = out.Message
		}
		return nil, fmt.Errorf("preprocess reported failure: %s", msg)
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError("fireapi", resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) statusError(op string, resp *http.Response) error {
	var apiErr apiError
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.text() != "" {
		return fmt.Errorf("%s returned %s: %s", op, resp.Status, apiErr.text())
	}
	return fmt.Errorf("%s returned %s", op, resp.Status)
}
