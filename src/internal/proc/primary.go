package proc

import (
	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

type primaryProc struct {
	worker
}

// NewPrimary creates the primary process handle.
func NewPrimary(ch *Channel) Primary {
	return &primaryProc{worker{id: spp.PrimaryID, typ: spp.ProcPrimary, ch: ch}}
}

func (p *primaryProc) exec(cmd string) (string, error) {
	reply, err := p.ch.Exchange(cmd)
	if err != nil {
		return "", err
	}
	if msg, ok := rejected(reply); ok {
		return "", errors.NewWorkerCommandError(msg)
	}
	return reply, nil
}

func (p *primaryProc) Status() (string, error) {
	return p.exec(cmdStatus)
}

func (p *primaryProc) Clear() error {
	_, err := p.exec(cmdPrimaryClear)
	return err
}
