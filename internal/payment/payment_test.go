package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAddress(t *testing.T) {
	testCases := []struct {
		name       string
		components []string
		expected   string
	}{
		{
			name:       "all components present",
			components: []string{"1 Main St", "Apt 4", "Springfield", "IL", "62701", "US"},
			expected:   "1 Main St, Apt 4, Springfield, IL, 62701, US",
		},
		{
			name:       "missing line2 skipped",
			components: []string{"1 Main St", "", "Springfield", "IL", "62701", "US"},
			expected:   "1 Main St, Springfield, IL, 62701, US",
		},
		{
			name:       "whitespace-only treated as missing",
			components: []string{"1 Main St", "  ", "Springfield", "", "", "US"},
			expected:   "1 Main St, Springfield, US",
		},
		{
			name:       "all empty",
			components: []string{"", "", ""},
			expected:   "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, JoinAddress(testCase.components...))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(10000), toMinorUnits(100))
	assert.Equal(t, int64(5099), toMinorUnits(50.99))
	// 浮點殘差不應該讓 29.99 變成 2998
	assert.Equal(t, int64(2999), toMinorUnits(29.99))
	assert.Equal(t, int64(0), toMinorUnits(0))
}
