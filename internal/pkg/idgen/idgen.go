// Package idgen issues prefixed, digits-only identifiers such as "RES-1718000000000".
//
// The suffix starts at the current Unix time in milliseconds and never repeats
// or goes backwards, even when several ids are requested in the same
// millisecond or the wall clock steps back.
package idgen

import (
	"strconv"
	"sync"
	"time"
)

const (
	ResidentPrefix  = "RES-"
	RecordingPrefix = "VID-"
	PromptPrefix    = "P-"
)

type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func New(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n

	return prefix + strconv.FormatInt(n, 10)
}

// Observe advances the generator past an id issued by an earlier process,
// so reloaded collections never see a repeated suffix.
func (g *Generator) Observe(id string) {
	for _, prefix := range []string{ResidentPrefix, RecordingPrefix, PromptPrefix} {
		if len(id) <= len(prefix) || id[:len(prefix)] != prefix {
			continue
		}
		n, err := strconv.ParseInt(id[len(prefix):], 10, 64)
		if err != nil {
			return
		}
		g.mu.Lock()
		if n > g.last {
			g.last = n
		}
		g.mu.Unlock()
		return
	}
}
