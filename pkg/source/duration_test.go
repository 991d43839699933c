package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT15M", 900},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT0S", 0},
		{"P1DT2H", 93600},
		{"PT25M1S", 1501},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISODuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseISODuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "15M", "PTXS", "PT1H2X", "P"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseISODuration(in)
			assert.Error(t, err)
		})
	}
}
