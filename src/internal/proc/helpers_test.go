package proc

import (
	"net"
	"sync"
	"testing"
)

// fakeWorker answers commands on the far end of a pipe.
type fakeWorker struct {
	mu       sync.Mutex
	commands []string
}

func (f *fakeWorker) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

func (f *fakeWorker) last() string {
	cmds := f.received()
	if len(cmds) == 0 {
		return ""
	}
	return cmds[len(cmds)-1]
}

// newPipeChannel returns a channel whose worker replies with reply(cmd).
func newPipeChannel(t *testing.T, reply func(cmd string) string) (*Channel, *fakeWorker) {
	t.Helper()

	client, server := net.Pipe()
	w := &fakeWorker{}

	go func() {
		buf := make([]byte, recvChunkSize)
		for {
			n, err := server.Read(buf)
			if err != nil {
				return
			}
			cmd := string(buf[:n])
			w.mu.Lock()
			w.commands = append(w.commands, cmd)
			w.mu.Unlock()

			if _, err := server.Write([]byte(reply(cmd))); err != nil {
				return
			}
		}
	}()

	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})

	return NewChannel(client, 0), w
}

func constReply(reply string) func(string) string {
	return func(string) string { return reply }
}
