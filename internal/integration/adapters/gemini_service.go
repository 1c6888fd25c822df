// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/homeledger/backend/internal/application/adapter"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

const (
	defaultGeminiModel       = "gemini-2.5-flash-lite"
	defaultGeminiTemperature = 0.4
)

// GeminiService implements adapter.TextGenerator using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance. An empty model selects the default.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Generate sends the system instructions and data summary and returns the raw response text.
func (s *GeminiService) Generate(ctx context.Context, request adapter.GenerationRequest) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.NewGenerationError(
			domainerror.ErrCodeGenerationUnavailable,
			"gemini service is not configured",
			false,
			domainerror.ErrGenerationUnavailable,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", classifyError(fmt.Errorf("failed to create gemini client: %w", err))
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(defaultGeminiTemperature)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(request.SystemInstructions))

	resp, err := model.GenerateContent(ctx, genai.Text(request.DataSummary))
	if err != nil {
		return "", classifyError(fmt.Errorf("failed to generate content: %w", err))
	}

	text, err := responseText(resp)
	if err != nil {
		return "", domainerror.NewGenerationError(
			domainerror.ErrCodeGenerationInvalid,
			"gemini returned no usable content",
			true,
			err,
		)
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("empty response from gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", errors.New("no content in response")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.New("no text content in response")
	}
	return sb.String(), nil
}

// classifyError converts a transport error into a GenerationError with a code and retryable flag.
func classifyError(err error) *domainerror.GenerationError {
	errStr := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return domainerror.NewGenerationError(domainerror.ErrCodeGenerationTimeout,
			"text generation timed out", true, err)
	case strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted"):
		return domainerror.NewGenerationError(domainerror.ErrCodeGenerationRateLimited,
			"text generation rate limited", true, err)
	case strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication"):
		return domainerror.NewGenerationError(domainerror.ErrCodeGenerationAuth,
			"text generation backend rejected credentials", false, err)
	case strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503"):
		return domainerror.NewGenerationError(domainerror.ErrCodeGenerationTransport,
			"text generation backend unreachable", true, err)
	default:
		return domainerror.NewGenerationError(domainerror.ErrCodeGenerationUnknown,
			"text generation failed", true, err)
	}
}
