package hotkey

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects hotkey statistics.
type Metrics struct {
	mu sync.RWMutex

	actions map[Kind]uint64
	rules   map[string]uint64

	ignored   uint64
	unmatched uint64
	guarded   uint64
	escapes   uint64

	lastAction   Action
	lastDispatch time.Time
}

// MetricsSnapshot is a copy of the collected statistics.
type MetricsSnapshot struct {
	// Actions counts executed actions by kind.
	Actions map[Kind]uint64
	// Rules counts matches by rule name.
	Rules map[string]uint64
	// Ignored counts events rejected by the focus filter.
	Ignored uint64
	// Unmatched counts eligible events no rule claimed.
	Unmatched uint64
	// Guarded counts matched events whose guard turned them into no-ops.
	Guarded uint64
	// Escapes counts web fullscreen exits made by the escape watcher.
	Escapes uint64

	LastAction   Action
	LastDispatch time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actions: make(map[Kind]uint64),
		rules:   make(map[string]uint64),
	}
}

// RecordMatch records a matched rule and the action it produced.
func (m *Metrics) RecordMatch(rule string, a Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rules[rule]++
	if a.Kind == ActionNone {
		m.guarded++
		return
	}
	m.actions[a.Kind]++
	m.lastAction = a
	m.lastDispatch = time.Now()
}

// RecordIgnored records an event rejected by the filter.
func (m *Metrics) RecordIgnored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ignored++
}

// RecordUnmatched records an eligible event no rule claimed.
func (m *Metrics) RecordUnmatched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unmatched++
}

// RecordEscape records a web fullscreen exit.
func (m *Metrics) RecordEscape() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.escapes++
}

// Snapshot returns a copy of the current statistics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		Actions:      make(map[Kind]uint64, len(m.actions)),
		Rules:        make(map[string]uint64, len(m.rules)),
		Ignored:      m.ignored,
		Unmatched:    m.unmatched,
		Guarded:      m.guarded,
		Escapes:      m.escapes,
		LastAction:   m.lastAction,
		LastDispatch: m.lastDispatch,
	}
	for k, v := range m.actions {
		s.Actions[k] = v
	}
	for k, v := range m.rules {
		s.Rules[k] = v
	}
	return s
}

// TopRules returns the n most matched rule names, most frequent first.
func (s MetricsSnapshot) TopRules(n int) []string {
	names := make([]string, 0, len(s.Rules))
	for name := range s.Rules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.Rules[names[i]] != s.Rules[names[j]] {
			return s.Rules[names[i]] > s.Rules[names[j]]
		}
		return names[i] < names[j]
	})
	if n >= 0 && n < len(names) {
		names = names[:n]
	}
	return names
}
