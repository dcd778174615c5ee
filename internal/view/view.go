// Package view is the booth's screen navigation state machine.
//
// A State pairs the signed-in principal with the current screen and its
// context payload. Next is total: every (State, Event) pair yields a
// Transition, and the resulting State always shows a screen the principal
// may see.
package view

import "errors"

type View string

const (
	Welcome              View = "WELCOME"
	SignUp               View = "SIGN_UP"
	Login                View = "LOGIN"
	ResidentHome         View = "RESIDENT_HOME"
	PromptsList          View = "PROMPTS_LIST"
	Recording            View = "RECORDING"
	StaffHome            View = "STAFF_HOME"
	StaffRecordingDetail View = "STAFF_RECORDING_DETAIL"
	StaffManagePrompts   View = "STAFF_MANAGE_PROMPTS"
	ContactFamily        View = "CONTACT_FAMILY"
	SendGreeting         View = "SEND_GREETING"
)

var All = []View{
	Welcome, SignUp, Login,
	ResidentHome, PromptsList, Recording, ContactFamily, SendGreeting,
	StaffHome, StaffRecordingDetail, StaffManagePrompts,
}

func (v View) IsValid() bool {
	for _, known := range All {
		if v == known {
			return true
		}
	}
	return false
}

var (
	ErrUnknownView  = errors.New("unknown view")
	ErrUnreachable  = errors.New("view not reachable for current principal")
	ErrUnknownEvent = errors.New("unknown navigation event")
)

type Kind int

const (
	Anonymous Kind = iota
	ResidentKind
	StaffKind
)

func (k Kind) String() string {
	switch k {
	case ResidentKind:
		return "resident"
	case StaffKind:
		return "staff"
	default:
		return "anonymous"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Principal is who the screen is being shown to.
type Principal struct {
	Kind       Kind   `json:"kind"`
	ResidentID string `json:"resident_id,omitempty"`
}

func AnonymousPrincipal() Principal {
	return Principal{Kind: Anonymous}
}

func ResidentPrincipal(id string) Principal {
	return Principal{Kind: ResidentKind, ResidentID: id}
}

func StaffPrincipal(id string) Principal {
	return Principal{Kind: StaffKind, ResidentID: id}
}

func (p Principal) Home() View {
	switch p.Kind {
	case ResidentKind:
		return ResidentHome
	case StaffKind:
		return StaffHome
	default:
		return Welcome
	}
}

var reachable = map[Kind]map[View]bool{
	Anonymous: {
		Welcome: true, Login: true, SignUp: true,
	},
	ResidentKind: {
		ResidentHome: true, PromptsList: true, Recording: true, ContactFamily: true, SendGreeting: true,
	},
	StaffKind: {
		StaffHome: true, StaffRecordingDetail: true, StaffManagePrompts: true,
	},
}

func (p Principal) CanSee(v View) bool {
	return reachable[p.Kind][v]
}

// Payload is the side-channel context for a screen, such as the recording
// shown on the staff detail screen.
type Payload map[string]any

func (p Payload) clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

type State struct {
	Principal Principal `json:"principal"`
	View      View      `json:"view"`
	Payload   Payload   `json:"context,omitempty"`
}

func Initial() State {
	return State{Principal: AnonymousPrincipal(), View: Welcome}
}
