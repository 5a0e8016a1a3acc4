package models

import "fmt"

// GridStatus is the operational state of a grid section.
type GridStatus string

const (
	GridOnline      GridStatus = "online"
	GridOffline     GridStatus = "offline"
	GridMaintenance GridStatus = "maintenance"
	GridAlert       GridStatus = "alert"
)

// GridStatuses lists the closed set in statistics order.
var GridStatuses = []GridStatus{GridOnline, GridOffline, GridMaintenance, GridAlert}

// IsKnown reports whether s is one of the four grid statuses.
func (s GridStatus) IsKnown() bool {
	switch s {
	case GridOnline, GridOffline, GridMaintenance, GridAlert:
		return true
	}
	return false
}

// Label returns the capitalised display form.
func (s GridStatus) Label() string {
	return capitalize(string(s))
}

// ParseGridStatus returns the status for raw, or an error for unknown values.
func ParseGridStatus(raw string) (GridStatus, error) {
	s := GridStatus(raw)
	if !s.IsKnown() {
		return s, fmt.Errorf("unknown grid status %q", raw)
	}
	return s, nil
}

// GridSection is one section of the distribution grid. Load is a percentage
// in [0,100]. ConnectedToIDs is the adjacency list expanded by the gateway.
type GridSection struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         GridStatus `json:"status"`
	Load           int        `json:"load"`
	Region         string     `json:"region"`
	ConnectedToIDs []string   `json:"connected_to_ids"`
}

// Clone returns a copy that shares no slices with g.
func (g GridSection) Clone() GridSection {
	g.ConnectedToIDs = cloneIDs(g.ConnectedToIDs)
	return g
}
