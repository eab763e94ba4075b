package spp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
)

func TestParsePort_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Port
	}{
		{"phy:0", Port{Kind: PortPhy, Index: 0}},
		{"vhost:12", Port{Kind: PortVhost, Index: 12}},
		{"ring:3", Port{Kind: PortRing, Index: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePort(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParsePort_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"phy",
		"phy:",
		":0",
		"phy:0:1",
		"eth:0",
		"PHY:0",
		"phy:a",
		"phy:1.5",
		"phy:-1",
		"vhost 0",
	}

	for _, in := range invalid {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePort(in)
			require.Error(t, err)

			var derr *errors.Error
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, errors.ErrCodeInvalidValue, derr.Code)
			assert.Equal(t, "port", derr.Key)
			assert.Equal(t, in, derr.Value)
		})
	}
}

func TestParsePortValue_NonString(t *testing.T) {
	_, err := ParsePortValue(float64(1))

	var derr *errors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "port", derr.Key)
	assert.Equal(t, float64(1), derr.Value)
}
