package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

func TestNFV_Commands(t *testing.T) {
	tests := []struct {
		name string
		call func(NFV) error
		want string
	}{
		{"forward", func(p NFV) error { return p.Forward() }, "forward"},
		{"stop", func(p NFV) error { return p.Stop() }, "stop"},
		{"port add", func(p NFV) error { return p.PortAdd(spp.PortRing, 0) }, "add ring 0"},
		{"port del", func(p NFV) error { return p.PortDel(spp.PortVhost, 2) }, "del vhost 2"},
		{
			"patch",
			func(p NFV) error {
				return p.PatchAdd(spp.Port{Kind: spp.PortPhy, Index: 0}, spp.Port{Kind: spp.PortRing, Index: 1})
			},
			"patch phy:0 ring:1",
		},
		{"patch reset", func(p NFV) error { return p.PatchReset() }, "patch reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, w := newPipeChannel(t, constReply("ok"))
			p := NewNFV(2, ch)

			require.NoError(t, tt.call(p))
			assert.Equal(t, tt.want, w.last())
		})
	}
}

func TestNFV_Status(t *testing.T) {
	report := "status: idling\nports: 'phy:0-ring:1', 'ring:1'"
	ch, _ := newPipeChannel(t, constReply(report))
	p := NewNFV(2, ch)

	got, err := p.Status()
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestNFV_RejectedCommand(t *testing.T) {
	ch, _ := newPipeChannel(t, constReply("error: invalid port"))
	p := NewNFV(2, ch)

	err := p.PortAdd(spp.PortPhy, 9)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerCommand, errors.CodeOf(err))
	assert.Equal(t, "command error: invalid port", err.Error())
}

func TestPrimary_Commands(t *testing.T) {
	ch, w := newPipeChannel(t, constReply("clear"))
	p := NewPrimary(ch)

	require.NoError(t, p.Clear())
	assert.Equal(t, "clear", w.last())

	_, err := p.Status()
	require.NoError(t, err)
	assert.Equal(t, "status", w.last())
}

func TestRejected(t *testing.T) {
	tests := []struct {
		reply   string
		msg     string
		isError bool
	}{
		{"ok", "", false},
		{"status: running\nports: ", "", false},
		{"error: no such port", "no such port", true},
		{"Error", "Error", true},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			msg, ok := rejected(tt.reply)
			assert.Equal(t, tt.isError, ok)
			assert.Equal(t, tt.msg, msg)
		})
	}
}
