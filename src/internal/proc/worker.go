package proc

import (
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
)

// worker holds what every process handle shares.
type worker struct {
	id  int
	typ spp.ProcType
	ch  *Channel
}

func (w *worker) ID() int            { return w.id }
func (w *worker) Type() spp.ProcType { return w.typ }
func (w *worker) Close() error       { return w.ch.Close() }

// NewProc wraps ch in the handle matching typ.
func NewProc(typ spp.ProcType, id int, ch *Channel) Proc {
	switch typ {
	case spp.ProcPrimary:
		return NewPrimary(ch)
	case spp.ProcNFV:
		return NewNFV(id, ch)
	default:
		return NewVF(id, ch)
	}
}
