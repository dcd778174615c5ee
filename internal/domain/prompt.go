package domain

import (
	"errors"
	"strings"
)

var ErrQuestionRequired = errors.New("question is required")

type Prompt struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Question string `json:"question" yaml:"question"`
}

type CreatePromptInput struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

func (in *CreatePromptInput) Validate() error {
	if strings.TrimSpace(in.Question) == "" {
		return ErrQuestionRequired
	}
	return nil
}
