package domain

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

type Resident struct {
	ID                 string  `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	Photo              *string `json:"photo" yaml:"photo"`
	Email              string  `json:"email" yaml:"email"`
	IsStaff            bool    `json:"is_staff" yaml:"is_staff"`
	FamilyContactName  *string `json:"family_contact_name,omitempty" yaml:"family_contact_name"`
	FamilyContactEmail *string `json:"family_contact_email,omitempty" yaml:"family_contact_email"`
	FamilyContactPhone *string `json:"family_contact_phone,omitempty" yaml:"family_contact_phone"`
}

// HasFamilyEmail reports whether outreach email can be sent for this resident.
func (r *Resident) HasFamilyEmail() bool {
	return r.FamilyContactEmail != nil && strings.TrimSpace(*r.FamilyContactEmail) != ""
}

type CreateResidentInput struct {
	Name               string  `json:"name"`
	Photo              *string `json:"photo,omitempty"`
	Email              string  `json:"email"`
	FamilyContactName  *string `json:"family_contact_name,omitempty"`
	FamilyContactEmail *string `json:"family_contact_email,omitempty"`
	FamilyContactPhone *string `json:"family_contact_phone,omitempty"`
}

func (in *CreateResidentInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return ErrInvalidEmail
		}
	}
	if in.FamilyContactEmail != nil && *in.FamilyContactEmail != "" {
		if _, err := mail.ParseAddress(*in.FamilyContactEmail); err != nil {
			return ErrInvalidEmail
		}
	}
	return nil
}
