package view

import (
	"maps"
	"reflect"
)

// Event is one of Navigate, SignedIn or SignedOut.
type Event interface {
	isEvent()
}

type Navigate struct {
	View    View
	Payload Payload
}

type SignedIn struct {
	Principal Principal
}

type SignedOut struct{}

func (Navigate) isEvent()  {}
func (SignedIn) isEvent()  {}
func (SignedOut) isEvent() {}

type Outcome string

const (
	Accepted   Outcome = "accepted"
	Redirected Outcome = "redirected"
	Invalid    Outcome = "invalid"
)

type Transition struct {
	From    State   `json:"from"`
	To      State   `json:"to"`
	Outcome Outcome `json:"outcome"`
	Reason  error   `json:"-"`
}

// Changed reports whether the transition moved to a different view, principal
// or payload. A nil payload and an empty one are the same.
func (t Transition) Changed() bool {
	if t.From.View != t.To.View || t.From.Principal != t.To.Principal {
		return true
	}
	return !maps.EqualFunc(t.From.Payload, t.To.Payload, func(a, b any) bool {
		return reflect.DeepEqual(a, b)
	})
}

func Next(s State, ev Event) Transition {
	switch e := ev.(type) {
	case Navigate:
		return navigate(s, e)
	case SignedIn:
		return signIn(s, e)
	case SignedOut:
		return Transition{From: s, To: Initial(), Outcome: Accepted}
	default:
		return Transition{From: s, To: s, Outcome: Invalid, Reason: ErrUnknownEvent}
	}
}

func navigate(s State, e Navigate) Transition {
	home := State{Principal: s.Principal, View: s.Principal.Home()}

	if !e.View.IsValid() {
		return Transition{From: s, To: home, Outcome: Invalid, Reason: ErrUnknownView}
	}
	if !s.Principal.CanSee(e.View) {
		return Transition{From: s, To: home, Outcome: Redirected, Reason: ErrUnreachable}
	}

	to := State{Principal: s.Principal, View: e.View, Payload: e.Payload.clone()}
	return Transition{From: s, To: to, Outcome: Accepted}
}

// signIn forces the role home whenever the identity changes, whatever screen
// was showing. Re-announcing the same identity leaves the state alone.
func signIn(s State, e SignedIn) Transition {
	if e.Principal.Kind == Anonymous {
		return Transition{From: s, To: Initial(), Outcome: Accepted}
	}
	if s.Principal == e.Principal && s.Principal.CanSee(s.View) {
		return Transition{From: s, To: s, Outcome: Accepted}
	}
	to := State{Principal: e.Principal, View: e.Principal.Home()}
	return Transition{From: s, To: to, Outcome: Redirected}
}
