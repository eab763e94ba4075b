package status

import (
	"sort"
	"strings"
)

const nullPort = "null"

// Empty is the result for a worker without a usable status report.
// It encodes as {}.
type Empty struct{}

// Patch is a forwarding link between two ports of a network-function proxy.
type Patch struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// NFVStatus is the API representation of a network-function proxy.
type NFVStatus struct {
	ClientID int      `json:"client_id"`
	Status   string   `json:"status"`
	Ports    []string `json:"ports"`
	Patches  []Patch  `json:"patches"`
}

// ConvertNFV parses the two-line status report of a network-function proxy:
//
//	status: idling
//	ports: 'phy:0-phy:1,phy:1-null'
//
// A report that is not exactly two lines yields Empty, as does a line without
// a value token. Pairs where either side is "null" only contribute ports.
// Ports are deduplicated and sorted.
func ConvertNFV(clientID int, report string) any {
	lines := strings.Split(report, "\n")
	if len(lines) != 2 {
		return Empty{}
	}

	state := strings.Fields(lines[0])
	links := strings.Fields(lines[1])
	if len(state) < 2 || len(links) < 2 {
		return Empty{}
	}

	st := NFVStatus{
		ClientID: clientID,
		Status:   state[1],
		Ports:    []string{},
		Patches:  []Patch{},
	}

	seen := make(map[string]bool)
	for _, pair := range strings.Split(strings.ReplaceAll(links[1], "'", ""), ",") {
		sides := strings.Split(pair, "-")
		if len(sides) != 2 {
			continue
		}
		src, dst := sides[0], sides[1]

		if src != nullPort && dst != nullPort {
			st.Patches = append(st.Patches, Patch{Src: src, Dst: dst})
		}
		for _, p := range sides {
			if p != nullPort && p != "" && !seen[p] {
				seen[p] = true
				st.Ports = append(st.Ports, p)
			}
		}
	}
	sort.Strings(st.Ports)

	return st
}
