package proc

import (
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
)

func TestChannel_Exchange(t *testing.T) {
	ch, w := newPipeChannel(t, constReply("ok\x00\x00\x00"))

	reply, err := ch.Exchange("status")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, []string{"status"}, w.received())
}

func TestChannel_ExchangeLongReply(t *testing.T) {
	long := strings.Repeat("x", recvChunkSize+300)
	ch, _ := newPipeChannel(t, constReply(long))

	reply, err := ch.Exchange("status")
	require.NoError(t, err)
	assert.Len(t, reply, len(long))
}

func TestChannel_BrokenConnection(t *testing.T) {
	client, server := net.Pipe()
	_ = server.Close()

	ch := NewChannel(client, 0)

	var calls atomic.Int32
	done := make(chan struct{})
	ch.OnBreak(func() {
		calls.Add(1)
		close(done)
	})

	_, err := ch.Exchange("status")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("break callback was not called")
	}

	_, err = ch.Exchange("status")
	require.Error(t, err)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestChannel_Timeout(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	go func() {
		buf := make([]byte, recvChunkSize)
		_, _ = server.Read(buf)
		// never replies
	}()

	ch := NewChannel(client, 50*time.Millisecond)
	_, err := ch.Exchange("status")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))
}

func TestChannel_Discard(t *testing.T) {
	ch, _ := newPipeChannel(t, constReply("ok"))

	var calls atomic.Int32
	done := make(chan struct{})
	ch.OnBreak(func() {
		calls.Add(1)
		close(done)
	})

	ch.Discard()
	ch.Discard()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("break callback was not called")
	}

	_, err := ch.Exchange("status")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeWorkerChannel, errors.CodeOf(err))
	assert.NoError(t, ch.Close())
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
