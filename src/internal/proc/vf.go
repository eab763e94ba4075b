package proc

import (
	"encoding/json"
	"strings"

	"github.com/maksimkurb/spp-ctl/src/internal/errors"
	"github.com/maksimkurb/spp-ctl/src/internal/spp"
	"github.com/maksimkurb/spp-ctl/src/internal/status"
)

const resultSuccess = "success"

type vfReply struct {
	Results []vfResult `json:"results"`
}

type vfResult struct {
	Result       string `json:"result"`
	ErrorDetails struct {
		Message string `json:"message"`
	} `json:"error_details"`
}

type vfProc struct {
	worker
}

// NewVF creates a virtual forwarder handle for client id.
func NewVF(id int, ch *Channel) VF {
	return &vfProc{worker{id: id, typ: spp.ProcVF, ch: ch}}
}

// exec sends cmd and checks every result of the JSON reply. A reply that is
// not valid JSON discards the channel.
func (p *vfProc) exec(cmd string) ([]byte, error) {
	raw, err := p.ch.Exchange(cmd)
	if err != nil {
		return nil, err
	}

	var reply vfReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		p.ch.Discard()
		return nil, errors.NewWorkerChannelError("malformed reply", err)
	}

	for _, r := range reply.Results {
		if r.Result == resultSuccess {
			continue
		}
		msg := r.ErrorDetails.Message
		if msg == "" {
			msg = r.Result
		}
		return nil, errors.NewWorkerCommandError(msg)
	}

	return []byte(raw), nil
}

func (p *vfProc) Status() (status.VFReport, error) {
	var report status.VFReport

	raw, err := p.exec(cmdStatus)
	if err != nil {
		return report, err
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		return report, errors.NewWorkerChannelError("malformed status", err)
	}
	return report, nil
}

func (p *vfProc) StartComponent(name string, core int, componentType string) error {
	_, err := p.exec(render(tmplComponentStart,
		"name", name, "core", itoa(core), "type", componentType))
	return err
}

func (p *vfProc) StopComponent(name string) error {
	_, err := p.exec(render(tmplComponentStop, "name", name))
	return err
}

func (p *vfProc) PortAdd(port spp.Port, dir, component, tagOp string, vid, pcp int) error {
	kv := []string{"port", port.String(), "dir", dir, "name", component, "op", tagOp}

	var cmd string
	switch tagOp {
	case spp.TagAdd:
		cmd = render(tmplPortAddVlan, append(kv, "vid", itoa(vid), "pcp", itoa(pcp))...)
	case spp.TagDel:
		cmd = render(tmplPortAddTagOp, kv...)
	default:
		cmd = render(tmplPortAdd, kv...)
	}

	_, err := p.exec(cmd)
	return err
}

func (p *vfProc) PortDel(port spp.Port, dir, component string) error {
	_, err := p.exec(render(tmplPortDel, "port", port.String(), "dir", dir, "name", component))
	return err
}

func (p *vfProc) SetClassifierTable(mac string, port spp.Port) error {
	return p.classifier(spp.ActionAdd, mac, port)
}

func (p *vfProc) SetClassifierTableWithVlan(mac string, port spp.Port, vid int) error {
	return p.classifierVlan(spp.ActionAdd, mac, port, vid)
}

func (p *vfProc) ClearClassifierTable(mac string, port spp.Port) error {
	return p.classifier(spp.ActionDel, mac, port)
}

func (p *vfProc) ClearClassifierTableWithVlan(mac string, port spp.Port, vid int) error {
	return p.classifierVlan(spp.ActionDel, mac, port, vid)
}

func (p *vfProc) classifier(action, mac string, port spp.Port) error {
	_, err := p.exec(render(tmplClassifierMAC,
		"action", action, "mac", strings.ToLower(mac), "port", port.String()))
	return err
}

func (p *vfProc) classifierVlan(action, mac string, port spp.Port, vid int) error {
	_, err := p.exec(render(tmplClassifierVLAN,
		"action", action, "vid", itoa(vid), "mac", strings.ToLower(mac), "port", port.String()))
	return err
}
