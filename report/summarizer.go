package report

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-firewatch/types"
)

const summaryModel = openai.GPT3Dot5Turbo
const maxSummaryTokens = 250

// NewClientFromEnv returns an OpenAI client when OPENAI_API_KEY is set.
func NewClientFromEnv() (*openai.Client, bool) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, false
	}
	return openai.NewClient(key), true
}

// Summarize asks the model for a short narrative summary of a risk run.
// Callers fall back to FallbackSummary on error.
func Summarize(ctx context.Context, client *openai.Client, region types.Region, p *types.PredictionData, s *types.SimulationData) (string, error) {
	if p == nil {
		return "", fmt.Errorf("no prediction data for region %s", region.ID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Region: %s, %s (%.0f km2)\n", region.Name, region.State, region.AreaKM2)
	fmt.Fprintf(&b, "Overall risk: %s (confidence %.2f)\n", p.OverallRiskLevel, p.Confidence)
	fmt.Fprintf(&b, "Risk areas km2: high %.1f, moderate %.1f, low %.1f of %.1f total\n",
		p.HighRiskAreaKM2, p.ModerateRiskAreaKM2, p.LowRiskAreaKM2, p.TotalAreaKM2)
	if s != nil && len(s.BurnedAreaKM2) > 0 {
		fmt.Fprintf(&b, "Simulated burned area after %dh: %.1f km2\n",
			s.TimeSteps[len(s.TimeSteps)-1], s.BurnedAreaKM2[len(s.BurnedAreaKM2)-1])
	}

	log.Printf("report: requesting summary for %s", region.ID)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: summaryModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an assistant writing concise forest-fire risk briefings for district officials. Two or three sentences, no preamble.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Summarize this fire risk analysis:\n" + b.String(),
			},
		},
		MaxTokens: maxSummaryTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summary response had no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// FallbackSummary is the deterministic text used when no LLM is configured
// or the request fails.
func FallbackSummary(region types.Region, p *types.PredictionData) string {
	if p == nil {
		return fmt.Sprintf("No prediction data is available for %s yet. Run an analysis to generate a report.", region.Name)
	}
	return fmt.Sprintf(
		"Fire risk for %s is %s with %.0f%% confidence. Of %.0f km2 analyzed, %.1f km2 is high risk, %.1f km2 moderate and %.1f km2 low.",
		region.Name, p.OverallRiskLevel, p.Confidence*100,
		p.TotalAreaKM2, p.HighRiskAreaKM2, p.ModerateRiskAreaKM2, p.LowRiskAreaKM2,
	)
}
