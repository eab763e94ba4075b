package components

import (
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/spp-ctl/src/internal/api"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
	"github.com/maksimkurb/spp-ctl/src/internal/proc"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

func TestMain(m *testing.M) {
	log.DisableLogs()
	os.Exit(m.Run())
}

var (
	_ Component = (*APIServer)(nil)
	_ Component = (*WorkerListener)(nil)
)

func TestServerEndToEnd(t *testing.T) {
	reg := proc.NewRegistry()

	workers := NewWorkerListener(reg, "127.0.0.1:0", "127.0.0.1:0", time.Second)
	require.NoError(t, workers.Start())
	assert.Error(t, workers.Start())

	server := NewAPIServer("127.0.0.1:0", reg, api.Options{})
	require.NoError(t, server.Start())
	assert.True(t, server.IsRunning())

	// An nfv worker connects and answers its client id, then a status request.
	_, sec := workers.Addrs()
	conn, err := net.Dial("tcp", sec.String())
	require.NoError(t, err)
	defer conn.Close()

	go func() {
		buf := make([]byte, 1024)
		replies := []string{"2", "status: running\nports: 'phy:0-ring:0'"}
		for _, reply := range replies {
			if _, err := conn.Read(buf); err != nil {
				return
			}
			if _, err := conn.Write([]byte(reply)); err != nil {
				return
			}
		}
	}()

	require.Eventually(t, func() bool {
		_, ok := reg.Lookup(2)
		return ok
	}, time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + server.Addr().String() + "/v1/nfvs/2")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"client_id": 2,
		"status": "running",
		"ports": ["phy:0", "ring:0"],
		"patches": [{"src":"phy:0","dst":"ring:0"}]
	}`, string(body))

	require.NoError(t, server.Stop())
	assert.Error(t, server.Stop())

	require.NoError(t, workers.Stop())
	assert.Equal(t, 0, reg.CountByType()[spp.ProcNFV])
	assert.False(t, workers.IsRunning())
}

func TestAPIServer_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	server := NewAPIServer(ln.Addr().String(), proc.NewRegistry(), api.Options{})
	assert.Error(t, server.Start())
	assert.False(t, server.IsRunning())
}
