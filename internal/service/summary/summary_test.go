package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"legacy-booth/internal/config"
	"legacy-booth/internal/domain"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	reply    string
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.reply, genai.RoleModel)},
		},
	}, nil
}

func TestSummarize(t *testing.T) {
	gen := &fakeGenerator{reply: "  Eleanor recalls her first day teaching.  "}
	s := &geminiSummarizer{models: gen, model: "test-model"}
	prompt := "Tell us about your first job."

	got, err := s.Summarize(context.Background(), domain.Recording{
		Type:          domain.RecordingLifeStory,
		Prompt:        &prompt,
		Transcription: "I walked into that classroom in 1962...",
	})

	require.NoError(t, err)
	assert.Equal(t, "Eleanor recalls her first day teaching.", got)
	assert.Equal(t, "test-model", gen.model)
	require.Len(t, gen.contents, 1)
	assert.Contains(t, gen.contents[0].Parts[0].Text, "Tell us about your first job.")
	assert.Contains(t, gen.contents[0].Parts[0].Text, "1962")
}

func TestSummarize_EmptyTranscription(t *testing.T) {
	gen := &fakeGenerator{reply: "unused"}
	s := &geminiSummarizer{models: gen, model: "test-model"}

	_, err := s.Summarize(context.Background(), domain.Recording{Transcription: "   "})

	assert.ErrorIs(t, err, ErrNothingToSummarize)
	assert.Empty(t, gen.model, "model is not called")
}

func TestSummarize_ModelError(t *testing.T) {
	s := &geminiSummarizer{models: &fakeGenerator{err: errors.New("quota")}, model: "m"}

	_, err := s.Summarize(context.Background(), domain.Recording{Transcription: "hello"})

	assert.ErrorContains(t, err, "quota")
}

func TestNew_DisabledWithoutKey(t *testing.T) {
	s, err := New(context.Background(), &config.Config{})
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), domain.Recording{Transcription: "hello"})
	assert.ErrorIs(t, err, ErrSummarizerDisabled)
}
