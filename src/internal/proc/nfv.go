package proc

import (
	"strings"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

// nfvErrorPrefix marks a rejected command in an nfv reply.
const nfvErrorPrefix = "error"

type nfvProc struct {
	worker
}

// NewNFV creates a network-function proxy handle for client id.
func NewNFV(id int, ch *Channel) NFV {
	return &nfvProc{worker{id: id, typ: spp.ProcNFV, ch: ch}}
}

func (p *nfvProc) exec(cmd string) (string, error) {
	reply, err := p.ch.Exchange(cmd)
	if err != nil {
		return "", err
	}
	if msg, ok := rejected(reply); ok {
		return "", errors.NewWorkerCommandError(msg)
	}
	return reply, nil
}

// Status returns the raw two-line status report.
func (p *nfvProc) Status() (string, error) {
	return p.exec(cmdStatus)
}

func (p *nfvProc) Forward() error {
	_, err := p.exec(cmdNFVForward)
	return err
}

func (p *nfvProc) Stop() error {
	_, err := p.exec(cmdNFVStop)
	return err
}

func (p *nfvProc) PortAdd(kind spp.PortKind, index int) error {
	return p.port(spp.ActionAdd, kind, index)
}

func (p *nfvProc) PortDel(kind spp.PortKind, index int) error {
	return p.port(spp.ActionDel, kind, index)
}

func (p *nfvProc) port(action string, kind spp.PortKind, index int) error {
	_, err := p.exec(render(tmplNFVPort, "action", action, "kind", string(kind), "index", itoa(index)))
	return err
}

func (p *nfvProc) PatchAdd(src, dst spp.Port) error {
	_, err := p.exec(render(tmplNFVPatch, "src", src.String(), "dst", dst.String()))
	return err
}

func (p *nfvProc) PatchReset() error {
	_, err := p.exec(cmdNFVPatchReset)
	return err
}

// rejected reports whether a plain-text reply signals an error, and returns
// the worker's message.
func rejected(reply string) (string, bool) {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(strings.ToLower(trimmed), nfvErrorPrefix) {
		return "", false
	}
	msg := strings.TrimSpace(strings.TrimLeft(trimmed[len(nfvErrorPrefix):], ":"))
	if msg == "" {
		msg = trimmed
	}
	return msg, true
}
