package proc

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

func idleChannel(t *testing.T) *Channel {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})
	return NewChannel(client, 0)
}

func TestRegistry_AddLookup(t *testing.T) {
	reg := NewRegistry()
	vf := NewVF(1, idleChannel(t))

	require.NoError(t, reg.Add(vf))

	got, ok := reg.Lookup(1)
	require.True(t, ok)
	assert.Same(t, vf, got)

	_, ok = reg.Lookup(2)
	assert.False(t, ok)
}

func TestRegistry_AddDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(NewVF(1, idleChannel(t))))

	err := reg.Add(NewNFV(1, idleChannel(t)))
	require.Error(t, err)

	got, _ := reg.Lookup(1)
	assert.Equal(t, spp.ProcVF, got.Type())
}

func TestRegistry_RemoveOnlyIdenticalHandle(t *testing.T) {
	reg := NewRegistry()
	first := NewVF(1, idleChannel(t))
	require.NoError(t, reg.Add(first))

	reg.Remove(first)
	_, ok := reg.Lookup(1)
	assert.False(t, ok)

	second := NewVF(1, idleChannel(t))
	require.NoError(t, reg.Add(second))

	reg.Remove(first)
	got, ok := reg.Lookup(1)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(NewNFV(3, idleChannel(t))))
	require.NoError(t, reg.Add(NewVF(1, idleChannel(t))))
	require.NoError(t, reg.Add(NewPrimary(idleChannel(t))))

	data, err := json.Marshal(reg.List())
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"primary"},
		{"type":"vf","client-id":1},
		{"type":"nfv","client-id":3}
	]`, string(data))
}

func TestRegistry_CountByType(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add(NewNFV(3, idleChannel(t))))
	require.NoError(t, reg.Add(NewNFV(4, idleChannel(t))))
	require.NoError(t, reg.Add(NewVF(1, idleChannel(t))))

	assert.Equal(t, map[spp.ProcType]int{
		spp.ProcPrimary: 0,
		spp.ProcVF:      1,
		spp.ProcNFV:     2,
	}, reg.CountByType())

	reg.CloseAll()
	assert.Empty(t, reg.List())
}
