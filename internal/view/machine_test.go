package view

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogusEvent struct{}

func (bogusEvent) isEvent() {}

func TestNext_AnonymousReachability(t *testing.T) {
	for _, v := range All {
		tr := Next(Initial(), Navigate{View: v})

		switch v {
		case Welcome, Login, SignUp:
			assert.Equal(t, Accepted, tr.Outcome, v)
			assert.Equal(t, v, tr.To.View)
		default:
			assert.Equal(t, Redirected, tr.Outcome, v)
			assert.Equal(t, Welcome, tr.To.View, v)
			assert.ErrorIs(t, tr.Reason, ErrUnreachable)
		}
	}
}

func TestNext_RoleReachability(t *testing.T) {
	resident := State{Principal: ResidentPrincipal("RES-1"), View: ResidentHome}
	staff := State{Principal: StaffPrincipal("STAFF-1"), View: StaffHome}

	assert.Equal(t, Accepted, Next(resident, Navigate{View: Recording}).Outcome)
	assert.Equal(t, Accepted, Next(resident, Navigate{View: SendGreeting}).Outcome)

	tr := Next(resident, Navigate{View: StaffManagePrompts})
	assert.Equal(t, Redirected, tr.Outcome)
	assert.Equal(t, ResidentHome, tr.To.View)

	tr = Next(resident, Navigate{View: Login})
	assert.Equal(t, ResidentHome, tr.To.View)

	assert.Equal(t, Accepted, Next(staff, Navigate{View: StaffRecordingDetail}).Outcome)
	tr = Next(staff, Navigate{View: ContactFamily})
	assert.Equal(t, Redirected, tr.Outcome)
	assert.Equal(t, StaffHome, tr.To.View)
}

func TestNext_UnknownViewFallsBackHome(t *testing.T) {
	staff := State{Principal: StaffPrincipal("STAFF-1"), View: StaffManagePrompts}

	tr := Next(staff, Navigate{View: "SETTINGS"})

	assert.Equal(t, Invalid, tr.Outcome)
	assert.ErrorIs(t, tr.Reason, ErrUnknownView)
	assert.Equal(t, StaffHome, tr.To.View)

	tr = Next(Initial(), Navigate{View: ""})
	assert.Equal(t, Invalid, tr.Outcome)
	assert.Equal(t, Welcome, tr.To.View)
}

func TestNext_PayloadTravelsWithView(t *testing.T) {
	staff := State{Principal: StaffPrincipal("STAFF-1"), View: StaffHome}
	payload := Payload{"recording_id": "VID-1"}

	tr := Next(staff, Navigate{View: StaffRecordingDetail, Payload: payload})
	payload["recording_id"] = "mutated"

	assert.Equal(t, StaffRecordingDetail, tr.To.View)
	assert.Equal(t, "VID-1", tr.To.Payload["recording_id"])

	back := Next(tr.To, Navigate{View: "NOPE", Payload: Payload{"x": 1}})
	assert.Nil(t, back.To.Payload, "redirects drop the payload")
}

func TestTransition_ChangedComparesPayload(t *testing.T) {
	staff := State{Principal: StaffPrincipal("STAFF-1"), View: StaffRecordingDetail, Payload: Payload{"recording_id": "VID-1"}}

	tr := Next(staff, Navigate{View: StaffRecordingDetail, Payload: Payload{"recording_id": "VID-2"}})
	assert.Equal(t, Accepted, tr.Outcome)
	assert.True(t, tr.Changed(), "same view with another recording")

	tr = Next(staff, Navigate{View: StaffRecordingDetail, Payload: Payload{"recording_id": "VID-1"}})
	assert.False(t, tr.Changed())

	filters := State{Principal: ResidentPrincipal("RES-1"), View: PromptsList, Payload: Payload{"tags": []any{"family"}}}
	tr = Next(filters, Navigate{View: PromptsList, Payload: Payload{"tags": []any{"family"}}})
	assert.False(t, tr.Changed(), "payload values are compared deeply")

	tr = Next(State{Principal: ResidentPrincipal("RES-1"), View: PromptsList}, Navigate{View: PromptsList, Payload: Payload{}})
	assert.False(t, tr.Changed(), "nil and empty payloads match")
}

func TestNext_SignInForcesRoleHome(t *testing.T) {
	mid := State{Principal: AnonymousPrincipal(), View: SignUp, Payload: Payload{"step": 2}}

	tr := Next(mid, SignedIn{Principal: StaffPrincipal("STAFF-1")})

	assert.Equal(t, StaffHome, tr.To.View)
	assert.Equal(t, StaffKind, tr.To.Principal.Kind)
	assert.Nil(t, tr.To.Payload)

	tr = Next(tr.To, SignedIn{Principal: ResidentPrincipal("RES-2")})
	assert.Equal(t, ResidentHome, tr.To.View)
}

func TestNext_SignInSameIdentityKeepsView(t *testing.T) {
	s := State{Principal: ResidentPrincipal("RES-1"), View: PromptsList, Payload: Payload{"category": "Family"}}

	tr := Next(s, SignedIn{Principal: ResidentPrincipal("RES-1")})

	assert.Equal(t, PromptsList, tr.To.View)
	assert.Equal(t, "Family", tr.To.Payload["category"])
	assert.False(t, tr.Changed())
}

func TestNext_SignedOut(t *testing.T) {
	s := State{Principal: ResidentPrincipal("RES-1"), View: Recording, Payload: Payload{"prompt_id": "P-1"}}

	tr := Next(s, SignedOut{})

	assert.Equal(t, Initial().View, tr.To.View)
	assert.Equal(t, Anonymous, tr.To.Principal.Kind)
	assert.Nil(t, tr.To.Payload)
	assert.True(t, tr.Changed())
}

func TestNext_UnknownEvent(t *testing.T) {
	s := State{Principal: ResidentPrincipal("RES-1"), View: Recording}

	tr := Next(s, bogusEvent{})

	assert.Equal(t, Invalid, tr.Outcome)
	assert.ErrorIs(t, tr.Reason, ErrUnknownEvent)
	assert.Equal(t, Recording, tr.To.View)
}

func TestNavigator(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, Welcome, n.Current().View)

	n.Navigate(Login, nil)
	assert.Equal(t, Login, n.Current().View)

	n.Apply(SignedIn{Principal: ResidentPrincipal("RES-1")})
	n.Navigate(Recording, Payload{"prompt_id": "P-3"})

	cur := n.Current()
	assert.Equal(t, Recording, cur.View)
	cur.Payload["prompt_id"] = "changed"
	assert.Equal(t, "P-3", n.Current().Payload["prompt_id"])
}

func TestNavigator_Concurrent(t *testing.T) {
	n := NewNavigator()
	n.Apply(SignedIn{Principal: StaffPrincipal("STAFF-1")})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				n.Navigate(StaffManagePrompts, nil)
			} else {
				n.Navigate(ResidentHome, nil)
			}
		}(i)
	}
	wg.Wait()

	assert.True(t, StaffPrincipal("STAFF-1").CanSee(n.Current().View))
}

func TestState_JSON(t *testing.T) {
	s := State{Principal: StaffPrincipal("STAFF-1"), View: StaffRecordingDetail, Payload: Payload{"recording_id": "VID-1"}}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"principal": {"kind": "staff", "resident_id": "STAFF-1"},
		"view": "STAFF_RECORDING_DETAIL",
		"context": {"recording_id": "VID-1"}
	}`, string(raw))
}
