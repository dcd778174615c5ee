package session

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"legacy-booth/internal/domain"
	"legacy-booth/internal/view"
)

// Session is one kiosk: its signed-in resident and the screen it shows.
// Auth changes drive the navigator, so a sign-in always lands on the
// resident's home screen.
type Session struct {
	ID        uuid.UUID
	Auth      *Auth
	Nav       *view.Navigator
	CreatedAt time.Time

	lastSeen atomic.Int64
}

func New(id uuid.UUID, now time.Time) *Session {
	s := &Session{
		ID:        id,
		Auth:      NewAuth(),
		Nav:       view.NewNavigator(),
		CreatedAt: now,
	}
	s.lastSeen.Store(now.UnixNano())

	s.Auth.OnChange(func(r *domain.Resident) {
		if r == nil {
			s.Nav.Apply(view.SignedOut{})
			return
		}
		s.Nav.Apply(view.SignedIn{Principal: PrincipalFor(*r)})
	})
	return s
}

func PrincipalFor(r domain.Resident) view.Principal {
	if r.IsStaff {
		return view.StaffPrincipal(r.ID)
	}
	return view.ResidentPrincipal(r.ID)
}

func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Snapshot is the wire form of a session.
type Snapshot struct {
	ID       uuid.UUID        `json:"id"`
	Resident *domain.Resident `json:"resident"`
	State    view.State       `json:"state"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{ID: s.ID, State: s.Nav.Current()}
	if r, ok := s.Auth.Current(); ok {
		snap.Resident = &r
	}
	return snap
}
