// Package seed provides the sample collections used when the booth storage is empty.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"legacy-booth/internal/domain"
)

//go:embed seed.yaml
var builtin []byte

type Data struct {
	Residents  []domain.Resident  `yaml:"residents"`
	Prompts    []domain.Prompt    `yaml:"prompts"`
	Recordings []domain.Recording `yaml:"recordings"`
}

// Default returns the built-in sample data.
func Default() Data {
	data, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("seed: built-in data is invalid: %v", err))
	}
	return data
}

// Load reads seed data from path, or returns Default when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	data, err := Parse(raw)
	if err != nil {
		return Data{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, nil
}

func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, err
	}

	for i, r := range data.Recordings {
		if !r.Type.IsValid() {
			return Data{}, fmt.Errorf("recording %s: %w", r.ID, domain.ErrInvalidRecordingType)
		}
		if r.Status == "" {
			data.Recordings[i].Status = domain.TranscriptionPending
		} else if !r.Status.IsValid() {
			return Data{}, fmt.Errorf("recording %s: %w", r.ID, domain.ErrInvalidTranscriptionStatus)
		}
	}

	if data.Residents == nil {
		data.Residents = []domain.Resident{}
	}
	if data.Prompts == nil {
		data.Prompts = []domain.Prompt{}
	}
	if data.Recordings == nil {
		data.Recordings = []domain.Recording{}
	}
	return data, nil
}
