package session

import (
	"sync"

	"legacy-booth/internal/domain"
)

// Auth tracks which resident, if any, is signed in at one kiosk. Login does
// not check credentials; callers decide who may sign in.
type Auth struct {
	mu      sync.RWMutex
	current *domain.Resident

	notifyMu  sync.Mutex
	listeners []func(*domain.Resident)
}

func NewAuth() *Auth {
	return &Auth{}
}

func (a *Auth) Login(resident domain.Resident) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	a.current = &resident
	a.mu.Unlock()

	a.notify(&resident)
}

func (a *Auth) Logout() {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()

	a.notify(nil)
}

func (a *Auth) Current() (domain.Resident, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.current == nil {
		return domain.Resident{}, false
	}
	return *a.current, true
}

// OnChange registers fn to run after every Login and Logout, in call order.
// fn receives nil on logout.
func (a *Auth) OnChange(fn func(*domain.Resident)) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.listeners = append(a.listeners, fn)
}

func (a *Auth) notify(r *domain.Resident) {
	for _, fn := range a.listeners {
		var arg *domain.Resident
		if r != nil {
			copied := *r
			arg = &copied
		}
		fn(arg)
	}
}
