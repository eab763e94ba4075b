package spp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
)

func TestParseVlanOp_DefaultsToNone(t *testing.T) {
	absent, err := ParseVlanOp(nil)
	require.NoError(t, err)

	explicit, err := ParseVlanOp(map[string]any{"operation": "none"})
	require.NoError(t, err)

	empty, err := ParseVlanOp(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, NoVlan, absent)
	assert.Equal(t, absent, explicit)
	assert.Equal(t, absent, empty)
}

func TestParseVlanOp_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want VlanOp
	}{
		{
			name: "add with numbers",
			in:   map[string]any{"operation": "add", "id": json.Number("101"), "pcp": json.Number("3")},
			want: VlanOp{Operation: VlanAdd, ID: 101, PCP: 3},
		},
		{
			name: "add with numeric strings",
			in:   map[string]any{"operation": "add", "id": "20", "pcp": "0"},
			want: VlanOp{Operation: VlanAdd, ID: 20, PCP: 0},
		},
		{
			name: "del ignores id",
			in:   map[string]any{"operation": "del", "id": "garbage"},
			want: VlanOp{Operation: VlanDel},
		},
		{
			name: "delete alias",
			in:   map[string]any{"operation": "delete"},
			want: VlanOp{Operation: VlanDel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVlanOp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVlanOp_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"not an object", "add"},
		{"missing operation", map[string]any{"id": 1}},
		{"unknown operation", map[string]any{"operation": "push"}},
		{"add without id", map[string]any{"operation": "add", "pcp": json.Number("1")}},
		{"add without pcp", map[string]any{"operation": "add", "id": json.Number("1")}},
		{"add with non-integer id", map[string]any{"operation": "add", "id": "abc", "pcp": json.Number("1")}},
		{"add with fractional pcp", map[string]any{"operation": "add", "id": json.Number("1"), "pcp": json.Number("1.5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVlanOp(tt.in)

			var derr *errors.Error
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, errors.ErrCodeInvalidValue, derr.Code)
			assert.Equal(t, "vlan", derr.Key)
			assert.Equal(t, tt.in, derr.Value)
		})
	}
}

func TestVlanOp_TagOperation(t *testing.T) {
	op, id, pcp := VlanOp{Operation: VlanAdd, ID: 10, PCP: 2}.TagOperation()
	assert.Equal(t, TagAdd, op)
	assert.Equal(t, 10, id)
	assert.Equal(t, 2, pcp)

	op, id, pcp = VlanOp{Operation: VlanDel, ID: 10, PCP: 2}.TagOperation()
	assert.Equal(t, TagDel, op)
	assert.Zero(t, id)
	assert.Zero(t, pcp)

	op, id, pcp = NoVlan.TagOperation()
	assert.Equal(t, TagNone, op)
	assert.Zero(t, id)
	assert.Zero(t, pcp)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{json.Number("7"), 7, true},
		{float64(7), 7, true},
		{"7", 7, true},
		{" 7 ", 7, true},
		{json.Number("7.5"), 0, false},
		{float64(7.5), 0, false},
		{"seven", 0, false},
		{true, 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseInt(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseInt(%#v)", tt.in)
		assert.Equal(t, tt.want, got, "ParseInt(%#v)", tt.in)
	}
}

func TestIsInteger_RejectsStrings(t *testing.T) {
	_, ok := IsInteger("3")
	assert.False(t, ok)

	n, ok := IsInteger(json.Number("3"))
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}
