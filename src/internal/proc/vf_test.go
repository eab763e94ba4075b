package proc

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

const successReply = `{"results":[{"result":"success"}]}`

func TestVF_Commands(t *testing.T) {
	phy0 := spp.Port{Kind: spp.PortPhy, Index: 0}
	ring1 := spp.Port{Kind: spp.PortRing, Index: 1}

	tests := []struct {
		name string
		call func(VF) error
		want string
	}{
		{
			name: "start component",
			call: func(p VF) error { return p.StartComponent("fw1", 2, spp.ComponentForward) },
			want: "component start fw1 2 forward",
		},
		{
			name: "stop component",
			call: func(p VF) error { return p.StopComponent("fw1") },
			want: "component stop fw1",
		},
		{
			name: "port add",
			call: func(p VF) error { return p.PortAdd(phy0, spp.DirRX, "fw1", spp.TagNone, 0, 0) },
			want: "port add phy:0 rx fw1",
		},
		{
			name: "port add with tag",
			call: func(p VF) error { return p.PortAdd(ring1, spp.DirTX, "fw1", spp.TagAdd, 100, 3) },
			want: "port add ring:1 tx fw1 add_vlantag 100 3",
		},
		{
			name: "port add untag",
			call: func(p VF) error { return p.PortAdd(ring1, spp.DirTX, "fw1", spp.TagDel, 0, 0) },
			want: "port add ring:1 tx fw1 del_vlantag",
		},
		{
			name: "port del",
			call: func(p VF) error { return p.PortDel(phy0, spp.DirRX, "fw1") },
			want: "port del phy:0 rx fw1",
		},
		{
			name: "classifier add",
			call: func(p VF) error { return p.SetClassifierTable("AA:BB:CC:DD:EE:FF", ring1) },
			want: "classifier_table add mac aa:bb:cc:dd:ee:ff ring:1",
		},
		{
			name: "classifier add with vlan",
			call: func(p VF) error { return p.SetClassifierTableWithVlan("aa:bb:cc:dd:ee:ff", ring1, 10) },
			want: "classifier_table add vlan 10 aa:bb:cc:dd:ee:ff ring:1",
		},
		{
			name: "classifier del",
			call: func(p VF) error { return p.ClearClassifierTable("aa:bb:cc:dd:ee:ff", ring1) },
			want: "classifier_table del mac aa:bb:cc:dd:ee:ff ring:1",
		},
		{
			name: "classifier del with vlan",
			call: func(p VF) error { return p.ClearClassifierTableWithVlan("aa:bb:cc:dd:ee:ff", ring1, 10) },
			want: "classifier_table del vlan 10 aa:bb:cc:dd:ee:ff ring:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, w := newPipeChannel(t, constReply(successReply))
			p := NewVF(1, ch)

			require.NoError(t, tt.call(p))
			assert.Equal(t, tt.want, w.last())
		})
	}
}

func TestVF_RejectedCommand(t *testing.T) {
	ch, _ := newPipeChannel(t, constReply(
		`{"results":[{"result":"error","error_details":{"message":"component name in use"}}]}`))
	p := NewVF(1, ch)

	err := p.StartComponent("fw1", 2, spp.ComponentForward)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerCommand, errors.CodeOf(err))
	assert.Equal(t, "command error: component name in use", err.Error())
}

func TestVF_MalformedReply(t *testing.T) {
	ch, _ := newPipeChannel(t, constReply(`{"results":[{"result":"succ`))
	p := NewVF(1, ch)

	broken := make(chan struct{})
	ch.OnBreak(func() { close(broken) })

	err := p.StopComponent("fw1")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "malformed reply")

	select {
	case <-broken:
	case <-time.After(time.Second):
		t.Fatal("break callback was not called")
	}

	_, err = p.Status()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))
}

func TestVF_SplitReplyDiscardsChannel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, recvChunkSize)
		if _, err := conn.Read(buf); err != nil {
			return
		}
		_, _ = conn.Write([]byte(`{"results":[{"res`))
		time.Sleep(50 * time.Millisecond)
		_, _ = conn.Write([]byte(`ult":"success"}]}`))

		if _, err := conn.Read(buf); err != nil {
			return
		}
		_, _ = conn.Write([]byte(`{"results":[{"result":"error","error_details":{"message":"boom"}}]}`))
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)

	ch := NewChannel(conn, time.Second)
	defer ch.Close()
	p := NewVF(1, ch)

	err = p.StopComponent("fw1")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))

	// The tail of the first reply must never be read as an answer.
	err = p.StopComponent("fw2")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))
	assert.NotContains(t, err.Error(), "invalid character")
}

func TestVF_Status(t *testing.T) {
	reply := `{"results":[{"result":"success"}],"info":{"client-id":1,"phy":[0,1],"vhost":[],"ring":[3],` +
		`"core":[{"core":2,"name":"fw1","type":"forward"}],"classifier_table":[]}}`
	ch, w := newPipeChannel(t, constReply(reply))
	p := NewVF(1, ch)

	report, err := p.Status()
	require.NoError(t, err)
	assert.Equal(t, "status", w.last())
	assert.Equal(t, 1, report.Info.ClientID)
	assert.Equal(t, []int{0, 1}, report.Info.Phy)
	assert.Equal(t, []int{3}, report.Info.Ring)
	assert.JSONEq(t, `[{"core":2,"name":"fw1","type":"forward"}]`, string(report.Info.Core))
}

func TestNewProc(t *testing.T) {
	ch, _ := newPipeChannel(t, constReply(successReply))

	assert.Equal(t, spp.ProcVF, NewProc(spp.ProcVF, 1, ch).Type())
	assert.Equal(t, spp.ProcNFV, NewProc(spp.ProcNFV, 2, ch).Type())

	pri := NewProc(spp.ProcPrimary, 7, ch)
	assert.Equal(t, spp.ProcPrimary, pri.Type())
	assert.Equal(t, spp.PrimaryID, pri.ID())
}
