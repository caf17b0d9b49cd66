package services

import (
	"fmt"
	"strings"
)

// AIService simulates the analysis and generation endpoints with
// deterministic canned responses. No model is called.
type AIService struct{}

// NewAIService creates a new AIService
func NewAIService() *AIService {
	return &AIService{}
}

// AnalysisResult is the canned output of Analyze.
type AnalysisResult struct {
	Sentiment       string   `json:"sentiment"`
	Keywords        []string `json:"keywords"`
	Summary         string   `json:"summary"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// Analyze produces a deterministic mock analysis of text.
func (s *AIService) Analyze(text string) AnalysisResult {
	sentiment := "neutral"
	if strings.Contains(strings.ToLower(text), "good") {
		sentiment = "positive"
	}

	words := strings.Fields(text)
	keywords := words
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}

	return AnalysisResult{
		Sentiment:  sentiment,
		Keywords:   keywords,
		Summary:    fmt.Sprintf("Analysis of %d words", len(words)),
		Confidence: 0.85,
		Recommendations: []string{
			"Consider automation opportunities",
			"Optimize workflow efficiency",
			"Implement knowledge base integration",
		},
	}
}

// Generate produces canned content for the requested type. Unknown types fall
// back to the general template; the caller echoes the requested type as-is.
func (s *AIService) Generate(prompt, contentType string) string {
	switch contentType {
	case "email":
		return fmt.Sprintf("Subject: Automated Response\n\nDear Recipient,\n\nBased on your request: %s\n\nBest regards,\nARIA Enhanced", prompt)
	case "report":
		return fmt.Sprintf("# Automated Report\n\n## Summary\n%s\n\n## Analysis\nGenerated insights and recommendations.", prompt)
	case "task":
		return fmt.Sprintf("Task: %s\nPriority: Medium\nEstimated Time: 30 minutes", prompt)
	default:
		return fmt.Sprintf("Generated response for: %s", prompt)
	}
}
