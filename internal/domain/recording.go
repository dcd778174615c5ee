package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidRecordingType       = errors.New("invalid recording type")
	ErrInvalidTranscriptionStatus = errors.New("invalid transcription status")
	ErrResidentRequired           = errors.New("resident id is required")
)

type RecordingType string

const (
	RecordingLifeStory RecordingType = "Life Story"
	RecordingMessage   RecordingType = "Message"
)

func (t RecordingType) IsValid() bool {
	switch t {
	case RecordingLifeStory, RecordingMessage:
		return true
	}
	return false
}

type TranscriptionStatus string

const (
	TranscriptionPending    TranscriptionStatus = "Pending"
	TranscriptionInProgress TranscriptionStatus = "In Progress"
	TranscriptionComplete   TranscriptionStatus = "Complete"
)

func (s TranscriptionStatus) IsValid() bool {
	switch s {
	case TranscriptionPending, TranscriptionInProgress, TranscriptionComplete:
		return true
	}
	return false
}

// VideoRef is the persisted form of an uploaded video.
type VideoRef struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Recording struct {
	ID            string              `json:"id" yaml:"id"`
	Timestamp     time.Time           `json:"timestamp" yaml:"timestamp"`
	ResidentID    string              `json:"resident_id" yaml:"resident_id"`
	Type          RecordingType       `json:"type" yaml:"type"`
	Prompt        *string             `json:"prompt,omitempty" yaml:"prompt"`
	Video         *VideoRef           `json:"video" yaml:"video"`
	Status        TranscriptionStatus `json:"status" yaml:"status"`
	Transcription string              `json:"transcription" yaml:"transcription"`
	AISummary     string              `json:"ai_summary" yaml:"ai_summary"`
	StaffNotes    string              `json:"staff_notes" yaml:"staff_notes"`
}

// Validate checks a whole recording sent as a replacement.
func (r *Recording) Validate() error {
	if r.ResidentID == "" {
		return ErrResidentRequired
	}
	if !r.Type.IsValid() {
		return ErrInvalidRecordingType
	}
	if !r.Status.IsValid() {
		return ErrInvalidTranscriptionStatus
	}
	return nil
}

type CreateRecordingInput struct {
	ResidentID    string              `json:"resident_id"`
	Type          RecordingType       `json:"type"`
	Prompt        *string             `json:"prompt,omitempty"`
	Video         *VideoRef           `json:"video,omitempty"`
	Status        TranscriptionStatus `json:"status,omitempty"`
	Transcription string              `json:"transcription,omitempty"`
	StaffNotes    string              `json:"staff_notes,omitempty"`
}

func (in *CreateRecordingInput) Validate() error {
	if in.ResidentID == "" {
		return ErrResidentRequired
	}
	if !in.Type.IsValid() {
		return ErrInvalidRecordingType
	}
	if in.Status != "" && !in.Status.IsValid() {
		return ErrInvalidTranscriptionStatus
	}
	return nil
}

// UpdateRecordingInput is a staff patch; nil fields are left as they are.
type UpdateRecordingInput struct {
	Status        *TranscriptionStatus `json:"status"`
	Transcription *string              `json:"transcription"`
	AISummary     *string              `json:"ai_summary"`
	StaffNotes    *string              `json:"staff_notes"`
}

func (in *UpdateRecordingInput) Validate() error {
	if in.Status != nil && !in.Status.IsValid() {
		return ErrInvalidTranscriptionStatus
	}
	return nil
}

// Apply returns a copy of r with the patch applied.
func (in *UpdateRecordingInput) Apply(r Recording) Recording {
	if in.Status != nil {
		r.Status = *in.Status
	}
	if in.Transcription != nil {
		r.Transcription = *in.Transcription
	}
	if in.AISummary != nil {
		r.AISummary = *in.AISummary
	}
	if in.StaffNotes != nil {
		r.StaffNotes = *in.StaffNotes
	}
	return r
}

type RecordingFilter struct {
	ResidentID string
	Type       RecordingType
	Status     TranscriptionStatus
}

func (f RecordingFilter) Matches(r Recording) bool {
	if f.ResidentID != "" && r.ResidentID != f.ResidentID {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}
