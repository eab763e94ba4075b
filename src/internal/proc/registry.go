package proc

import (
	"fmt"
	"sort"
	"sync"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/utils"
)

// Registry maps client ids to process handles. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	procs map[int]Proc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{procs: make(map[int]Proc)}
}

// Add registers p under its id. An id can only be registered once.
func (r *Registry) Add(p Proc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.procs[p.ID()]; ok {
		return fmt.Errorf("id %d already registered as %s", p.ID(), existing.Type())
	}
	r.procs[p.ID()] = p
	return nil
}

// Remove unregisters p and closes it. Nothing happens if the id has been
// taken over by another handle in the meantime.
func (r *Registry) Remove(p Proc) {
	r.mu.Lock()
	current, ok := r.procs[p.ID()]
	if ok && current == p {
		delete(r.procs, p.ID())
	}
	r.mu.Unlock()

	if ok && current == p {
		utils.CloseOrWarn(p, fmt.Sprintf("%s worker %d", p.Type(), p.ID()))
	}
}

// Lookup returns the handle registered under id.
func (r *Registry) Lookup(id int) (Proc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.procs[id]
	return p, ok
}

// List returns a summary of every registered process ordered by id.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	ids := make([]int, 0, len(r.procs))
	for id := range r.procs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	summaries := make([]Summary, 0, len(ids))
	for _, id := range ids {
		summaries = append(summaries, Summarize(r.procs[id]))
	}
	r.mu.RUnlock()

	return summaries
}

// CountByType returns the number of registered processes per type.
func (r *Registry) CountByType() map[spp.ProcType]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[spp.ProcType]int{
		spp.ProcPrimary: 0,
		spp.ProcVF:      0,
		spp.ProcNFV:     0,
	}
	for _, p := range r.procs {
		counts[p.Type()]++
	}
	return counts
}

// CloseAll unregisters and closes every process.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	procs := r.procs
	r.procs = make(map[int]Proc)
	r.mu.Unlock()

	for _, p := range procs {
		utils.CloseOrWarn(p, fmt.Sprintf("%s worker %d", p.Type(), p.ID()))
	}
}
