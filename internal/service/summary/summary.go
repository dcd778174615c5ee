// Package summary turns recording transcriptions into short staff-facing
// summaries.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"legacy-booth/internal/config"
	"legacy-booth/internal/domain"
)

var (
	ErrNothingToSummarize = errors.New("recording has no transcription")
	ErrSummarizerDisabled = errors.New("summaries are disabled: GENAI_API_KEY is empty")
)

type Summarizer interface {
	Summarize(ctx context.Context, recording domain.Recording) (string, error)
}

// generator is the slice of the genai Models service used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiSummarizer struct {
	models generator
	model  string
}

// New returns a Gemini-backed Summarizer, or a disabled one when no API key
// is configured.
func New(ctx context.Context, cfg *config.Config) (Summarizer, error) {
	if cfg.GenAIAPIKey == "" {
		return disabled{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GenAIAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := cfg.GenAIModel
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &geminiSummarizer{models: client.Models, model: model}, nil
}

func (g *geminiSummarizer) Summarize(ctx context.Context, recording domain.Recording) (string, error) {
	transcript := strings.TrimSpace(recording.Transcription)
	if transcript == "" {
		return "", ErrNothingToSummarize
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(recording, transcript)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("model returned an empty summary")
	}
	return text, nil
}

const systemInstruction = "You help care-home staff catalogue recorded life stories. " +
	"Write a warm, factual summary of two or three sentences. " +
	"Do not invent details that are not in the transcript."

func buildPrompt(r domain.Recording, transcript string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recording type: %s\n", r.Type)
	if r.Prompt != nil && *r.Prompt != "" {
		fmt.Fprintf(&b, "Prompt answered: %s\n", *r.Prompt)
	}
	b.WriteString("Transcript:\n")
	b.WriteString(transcript)
	return b.String()
}

type disabled struct{}

func (disabled) Summarize(context.Context, domain.Recording) (string, error) {
	return "", ErrSummarizerDisabled
}
