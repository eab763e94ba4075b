package proc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maksimkurb/spp-ctl/src/internal/log"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/utils"
)

// Listener accepts worker connections and registers them.
type Listener struct {
	reg     *Registry
	priAddr string
	secAddr string
	timeout time.Duration
}

// NewListener creates a listener for the primary and secondary ports.
// timeout bounds every command sent over an accepted connection.
func NewListener(reg *Registry, priAddr, secAddr string, timeout time.Duration) *Listener {
	return &Listener{
		reg:     reg,
		priAddr: priAddr,
		secAddr: secAddr,
		timeout: timeout,
	}
}

// Listen binds the primary and secondary ports.
func (l *Listener) Listen(ctx context.Context) (pri, sec net.Listener, err error) {
	lc := net.ListenConfig{Control: reuseAddr}

	pri, err = lc.Listen(ctx, "tcp", l.priAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on primary port %s: %w", l.priAddr, err)
	}

	sec, err = lc.Listen(ctx, "tcp", l.secAddr)
	if err != nil {
		_ = pri.Close()
		return nil, nil, fmt.Errorf("failed to listen on secondary port %s: %w", l.secAddr, err)
	}

	return pri, sec, nil
}

// Serve binds both ports and accepts workers until ctx is cancelled.
func (l *Listener) Serve(ctx context.Context) error {
	pri, sec, err := l.Listen(ctx)
	if err != nil {
		return err
	}
	return l.ServeListeners(ctx, pri, sec)
}

// ServeListeners accepts workers on already bound listeners until ctx is
// cancelled. Both listeners are closed on return.
func (l *Listener) ServeListeners(ctx context.Context, pri, sec net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		_ = pri.Close()
		_ = sec.Close()
		return nil
	})
	g.Go(func() error {
		return l.accept(ctx, pri, l.registerPrimary)
	})
	g.Go(func() error {
		return l.accept(ctx, sec, l.registerSecondary)
	})

	return g.Wait()
}

func (l *Listener) accept(ctx context.Context, ln net.Listener, register func(net.Conn)) error {
	log.Infof("Waiting for workers on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept on %s: %w", ln.Addr(), err)
		}
		go register(conn)
	}
}

func (l *Listener) registerPrimary(conn net.Conn) {
	ch := NewChannel(conn, l.timeout)
	l.register(NewPrimary(ch), ch)
}

func (l *Listener) registerSecondary(conn net.Conn) {
	ch := NewChannel(conn, l.timeout)

	reply, err := ch.Exchange(cmdClientID)
	if err != nil {
		log.Warnf("Failed to get client id from %s: %v", conn.RemoteAddr(), err)
		utils.CloseOrWarn(ch, "worker connection")
		return
	}

	id, typ, err := parseClientID(reply)
	if err != nil {
		log.Warnf("Refusing worker at %s: %v", conn.RemoteAddr(), err)
		utils.CloseOrWarn(ch, "worker connection")
		return
	}

	l.register(NewProc(typ, id, ch), ch)
}

// register publishes p. The break handler is installed first so that an
// exchange failing right after Add still unregisters the worker.
func (l *Listener) register(p Proc, ch *Channel) {
	ch.OnBreak(func() {
		log.Warnf("Lost connection to %s worker %d", p.Type(), p.ID())
		l.reg.Remove(p)
	})

	if err := l.reg.Add(p); err != nil {
		ch.OnBreak(nil)
		log.Warnf("Refusing %s worker at %s: %v", p.Type(), ch.RemoteAddr(), err)
		utils.CloseOrWarn(ch, "worker connection")
		return
	}

	log.Infof("Registered %s worker %d from %s", p.Type(), p.ID(), ch.RemoteAddr())
}

// hello is the JSON answer of a secondary to the client id request.
type hello struct {
	ClientID    *int         `json:"client_id"`
	ProcessType spp.ProcType `json:"process_type"`
}

// parseClientID reads a secondary's answer to the client id request. A bare
// integer identifies an nfv, a JSON object names its own type and defaults
// to vf.
func parseClientID(reply string) (int, spp.ProcType, error) {
	reply = strings.TrimSpace(reply)

	var (
		id  int
		typ spp.ProcType
	)

	if strings.HasPrefix(reply, "{") {
		var h hello
		if err := json.Unmarshal([]byte(reply), &h); err != nil {
			return 0, "", fmt.Errorf("malformed client id reply %q: %w", reply, err)
		}
		if h.ClientID == nil {
			return 0, "", fmt.Errorf("client id missing in %q", reply)
		}
		id, typ = *h.ClientID, h.ProcessType
		if typ == "" {
			typ = spp.ProcVF
		}
	} else {
		n, err := strconv.Atoi(reply)
		if err != nil {
			return 0, "", fmt.Errorf("malformed client id reply %q", reply)
		}
		id, typ = n, spp.ProcNFV
	}

	if typ != spp.ProcVF && typ != spp.ProcNFV {
		return 0, "", fmt.Errorf("unsupported process type %q", typ)
	}
	if id <= spp.PrimaryID {
		return 0, "", fmt.Errorf("invalid client id %d", id)
	}
	return id, typ, nil
}
