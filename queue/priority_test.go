package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriorityValid(t *testing.T) {
	type test struct {
		name     string
		priority Priority
		expected bool
	}

	tests := []*test{
		{name: "High", priority: PriorityHigh, expected: true},
		{name: "Medium", priority: PriorityMedium, expected: true},
		{name: "Low", priority: PriorityLow, expected: true},
		{name: "Zero", priority: 0},
		{name: "BeyondLow", priority: 4},
		{name: "Negative", priority: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.priority.Valid())
		})
	}
}

func TestPriorityString(t *testing.T) {
	require.Equal(t, "high", PriorityHigh.String())
	require.Equal(t, "medium", PriorityMedium.String())
	require.Equal(t, "low", PriorityLow.String())
	require.Equal(t, "unknown", Priority(42).String())
}

func TestPriorityOrdinals(t *testing.T) {
	require.Equal(t, Priority(1), PriorityHigh)
	require.Equal(t, Priority(2), PriorityMedium)
	require.Equal(t, Priority(3), PriorityLow)
}
