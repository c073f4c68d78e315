package cost

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() Rates {
	return Rates{
		Models: map[string]ModelRate{
			"haiku": {
				Input: 0.80, Output: 4.00,
				CacheWriteMul: 1.25, CacheReadMul: 0.1,
			},
			"sonnet": {
				Input: 3.00, Output: 15.00,
				CacheWriteMul: 1.25, CacheReadMul: 0.1,
			},
		},
	}
}

func TestCost(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(testRates())

	tests := []struct {
		name  string
		model string
		usage Usage
		want  float64
	}{
		{
			name:  "haiku simple",
			model: "haiku",
			usage: Usage{InputTokens: 1000000, OutputTokens: 100000},
			want:  0.80 + 0.40,
		},
		{
			name:  "sonnet with cache",
			model: "sonnet",
			usage: Usage{CacheWriteTokens: 1000000, CacheReadTokens: 1000000},
			want:  3.00*1.25 + 3.00*0.1,
		},
		{
			name:  "unknown model",
			model: "gpt",
			usage: Usage{InputTokens: 1000000},
			want:  0,
		},
		{
			name:  "zero usage",
			model: "sonnet",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, calc.Cost(tt.model, tt.usage), 1e-9)
		})
	}
}

func TestDefaultRates(t *testing.T) {
	t.Parallel()
	rates := DefaultRates()
	for _, model := range []string{"claude-haiku-4-5-20251001", "gemini-2.5-flash"} {
		rate, ok := rates.Models[model]
		require.True(t, ok, model)
		assert.Positive(t, rate.Input)
		assert.Greater(t, rate.Output, rate.Input)
	}
}

func TestTracker(t *testing.T) {
	t.Parallel()
	tr := NewTracker(NewCalculator(testRates()))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record("haiku", "policy_privacy_policy", Usage{InputTokens: 100000, OutputTokens: 10000})
		}()
	}
	wg.Wait()
	tr.Record("sonnet", "credit_score", Usage{InputTokens: 1000000})

	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "haiku", entries[0].Model)
	assert.Equal(t, 10, entries[0].Calls)
	assert.Equal(t, int64(1000000), entries[0].Usage.InputTokens)
	assert.InDelta(t, 0.80+0.40, entries[0].CostUSD, 1e-9)

	u, cost := tr.Total()
	assert.Equal(t, int64(2000000), u.InputTokens)
	assert.InDelta(t, 1.20+3.00, cost, 1e-9)
	tr.LogSummary()
}

func TestTracker_Nil(t *testing.T) {
	t.Parallel()
	var tr *Tracker
	assert.Zero(t, tr.Record("haiku", "op", Usage{InputTokens: 1}))
	assert.Nil(t, tr.Entries())
	tr.LogSummary()
}
