package mocks

import (
	"sync"

	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/status"
)

// Call records one method invocation on a mock process.
type Call struct {
	Method string
	Args   []any
}

// calls is embedded by the process mocks to record invocations.
type calls struct {
	mu    sync.Mutex
	Calls []Call
}

func (c *calls) record(method string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, Call{Method: method, Args: args})
}

// Recorded returns a copy of the recorded calls.
func (c *calls) Recorded() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.Calls...)
}

// Called returns how many times method was invoked.
func (c *calls) Called(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, call := range c.Calls {
		if call.Method == method {
			n++
		}
	}
	return n
}

// MockVF is a mock implementation of the proc.VF interface.
//
// Every method records its call. If the matching function field is nil the
// method succeeds; Status then returns an empty report for the mock's id.
//
// Example usage:
//
//	vf := &MockVF{
//	    IDValue: 1,
//	    StartComponentFunc: func(name string, core int, typ string) error {
//	        return errors.NewWorkerCommandError("component name in use")
//	    },
//	}
type MockVF struct {
	calls
	IDValue int

	StatusFunc                       func() (status.VFReport, error)
	StartComponentFunc               func(name string, core int, componentType string) error
	StopComponentFunc                func(name string) error
	PortAddFunc                      func(port spp.Port, dir, component, tagOp string, vid, pcp int) error
	PortDelFunc                      func(port spp.Port, dir, component string) error
	SetClassifierTableFunc           func(mac string, port spp.Port) error
	SetClassifierTableWithVlanFunc   func(mac string, port spp.Port, vid int) error
	ClearClassifierTableFunc         func(mac string, port spp.Port) error
	ClearClassifierTableWithVlanFunc func(mac string, port spp.Port, vid int) error
}

func (m *MockVF) ID() int            { return m.IDValue }
func (m *MockVF) Type() spp.ProcType { return spp.ProcVF }
func (m *MockVF) Close() error       { return nil }

func (m *MockVF) Status() (status.VFReport, error) {
	m.record("Status")
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return status.VFReport{Info: status.VFInfo{ClientID: m.IDValue}}, nil
}

func (m *MockVF) StartComponent(name string, core int, componentType string) error {
	m.record("StartComponent", name, core, componentType)
	if m.StartComponentFunc != nil {
		return m.StartComponentFunc(name, core, componentType)
	}
	return nil
}

func (m *MockVF) StopComponent(name string) error {
	m.record("StopComponent", name)
	if m.StopComponentFunc != nil {
		return m.StopComponentFunc(name)
	}
	return nil
}

func (m *MockVF) PortAdd(port spp.Port, dir, component, tagOp string, vid, pcp int) error {
	m.record("PortAdd", port, dir, component, tagOp, vid, pcp)
	if m.PortAddFunc != nil {
		return m.PortAddFunc(port, dir, component, tagOp, vid, pcp)
	}
	return nil
}

func (m *MockVF) PortDel(port spp.Port, dir, component string) error {
	m.record("PortDel", port, dir, component)
	if m.PortDelFunc != nil {
		return m.PortDelFunc(port, dir, component)
	}
	return nil
}

func (m *MockVF) SetClassifierTable(mac string, port spp.Port) error {
	m.record("SetClassifierTable", mac, port)
	if m.SetClassifierTableFunc != nil {
		return m.SetClassifierTableFunc(mac, port)
	}
	return nil
}

func (m *MockVF) SetClassifierTableWithVlan(mac string, port spp.Port, vid int) error {
	m.record("SetClassifierTableWithVlan", mac, port, vid)
	if m.SetClassifierTableWithVlanFunc != nil {
		return m.SetClassifierTableWithVlanFunc(mac, port, vid)
	}
	return nil
}

func (m *MockVF) ClearClassifierTable(mac string, port spp.Port) error {
	m.record("ClearClassifierTable", mac, port)
	if m.ClearClassifierTableFunc != nil {
		return m.ClearClassifierTableFunc(mac, port)
	}
	return nil
}

func (m *MockVF) ClearClassifierTableWithVlan(mac string, port spp.Port, vid int) error {
	m.record("ClearClassifierTableWithVlan", mac, port, vid)
	if m.ClearClassifierTableWithVlanFunc != nil {
		return m.ClearClassifierTableWithVlanFunc(mac, port, vid)
	}
	return nil
}

// MockNFV is a mock implementation of the proc.NFV interface.
//
// Status defaults to an idle report without ports.
type MockNFV struct {
	calls
	IDValue int

	StatusFunc     func() (string, error)
	ForwardFunc    func() error
	StopFunc       func() error
	PortAddFunc    func(kind spp.PortKind, index int) error
	PortDelFunc    func(kind spp.PortKind, index int) error
	PatchAddFunc   func(src, dst spp.Port) error
	PatchResetFunc func() error
}

func (m *MockNFV) ID() int            { return m.IDValue }
func (m *MockNFV) Type() spp.ProcType { return spp.ProcNFV }
func (m *MockNFV) Close() error       { return nil }

func (m *MockNFV) Status() (string, error) {
	m.record("Status")
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return "status: idling\nports: ''", nil
}

func (m *MockNFV) Forward() error {
	m.record("Forward")
	if m.ForwardFunc != nil {
		return m.ForwardFunc()
	}
	return nil
}

func (m *MockNFV) Stop() error {
	m.record("Stop")
	if m.StopFunc != nil {
		return m.StopFunc()
	}
	return nil
}

func (m *MockNFV) PortAdd(kind spp.PortKind, index int) error {
	m.record("PortAdd", kind, index)
	if m.PortAddFunc != nil {
		return m.PortAddFunc(kind, index)
	}
	return nil
}

func (m *MockNFV) PortDel(kind spp.PortKind, index int) error {
	m.record("PortDel", kind, index)
	if m.PortDelFunc != nil {
		return m.PortDelFunc(kind, index)
	}
	return nil
}

func (m *MockNFV) PatchAdd(src, dst spp.Port) error {
	m.record("PatchAdd", src, dst)
	if m.PatchAddFunc != nil {
		return m.PatchAddFunc(src, dst)
	}
	return nil
}

func (m *MockNFV) PatchReset() error {
	m.record("PatchReset")
	if m.PatchResetFunc != nil {
		return m.PatchResetFunc()
	}
	return nil
}

// MockPrimary is a mock implementation of the proc.Primary interface.
type MockPrimary struct {
	calls

	StatusFunc func() (string, error)
	ClearFunc  func() error
}

func (m *MockPrimary) ID() int            { return spp.PrimaryID }
func (m *MockPrimary) Type() spp.ProcType { return spp.ProcPrimary }
func (m *MockPrimary) Close() error       { return nil }

func (m *MockPrimary) Status() (string, error) {
	m.record("Status")
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return "", nil
}

func (m *MockPrimary) Clear() error {
	m.record("Clear")
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}
