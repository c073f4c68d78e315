// Package cost prices model token usage and totals it per operation.
package cost

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Entry is the accumulated usage of one model and operation.
type Entry struct {
	Model     string  `json:"model" yaml:"model"`
	Operation string  `json:"operation" yaml:"operation"`
	Calls     int     `json:"calls" yaml:"calls"`
	Usage     Usage   `json:"usage" yaml:"usage"`
	CostUSD   float64 `json:"cost_usd" yaml:"cost_usd"`
}

// Tracker accumulates usage across concurrent model calls. A nil Tracker
// only logs.
type Tracker struct {
	calc *Calculator

	mu      sync.Mutex
	entries map[string]*Entry
}

// NewTracker creates a Tracker priced by calc.
func NewTracker(calc *Calculator) *Tracker {
	return &Tracker{calc: calc, entries: make(map[string]*Entry)}
}

// Record adds one call's usage and logs it. It returns the call's cost.
func (t *Tracker) Record(model, operation string, u Usage) float64 {
	var cost float64
	if t != nil {
		cost = t.calc.Cost(model, u)
	}
	zap.L().Info("cost attribution",
		zap.String("model", model),
		zap.String("operation", operation),
		zap.Int64("input_tokens", u.InputTokens),
		zap.Int64("output_tokens", u.OutputTokens),
		zap.Int64("cache_write_tokens", u.CacheWriteTokens),
		zap.Int64("cache_read_tokens", u.CacheReadTokens),
		zap.Float64("estimated_cost_usd", cost),
	)
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	key := model + "\x00" + operation
	e, ok := t.entries[key]
	if !ok {
		e = &Entry{Model: model, Operation: operation}
		t.entries[key] = e
	}
	e.Calls++
	e.Usage.add(u)
	e.CostUSD += cost
	return cost
}

// Entries returns a snapshot ordered by model, then operation.
func (t *Tracker) Entries() []Entry {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, *e)
	}
	t.mu.Unlock()

	slices.SortFunc(out, func(a, b Entry) int {
		if c := strings.Compare(a.Model, b.Model); c != 0 {
			return c
		}
		return strings.Compare(a.Operation, b.Operation)
	})
	return out
}

// Total returns the summed usage and cost.
func (t *Tracker) Total() (Usage, float64) {
	var u Usage
	var cost float64
	for _, e := range t.Entries() {
		u.add(e.Usage)
		cost += e.CostUSD
	}
	return u, cost
}

// LogSummary logs the run totals. Nothing is logged when no call was
// recorded.
func (t *Tracker) LogSummary() {
	entries := t.Entries()
	if len(entries) == 0 {
		return
	}
	u, cost := t.Total()
	calls := 0
	for _, e := range entries {
		calls += e.Calls
	}
	zap.L().Info("cost summary",
		zap.Int("calls", calls),
		zap.Int64("input_tokens", u.InputTokens),
		zap.Int64("output_tokens", u.OutputTokens),
		zap.Float64("estimated_cost_usd", cost),
	)
}
