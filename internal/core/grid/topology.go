package grid

import "github.com/example/gridboard/internal/models"

// Neighborhood is the resolved adjacency of one section. Dangling lists
// connection IDs with no matching loaded section.
type Neighborhood struct {
	Connected []models.GridSection
	Dangling  []string
}

// FindSection looks up a section by ID.
func FindSection(sections []models.GridSection, id string) (models.GridSection, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return models.GridSection{}, false
}

// Neighbors resolves the ConnectedToIDs of section against sections.
func Neighbors(section models.GridSection, sections []models.GridSection) Neighborhood {
	var n Neighborhood
	for _, id := range section.ConnectedToIDs {
		if peer, ok := FindSection(sections, id); ok {
			n.Connected = append(n.Connected, peer)
		} else {
			n.Dangling = append(n.Dangling, id)
		}
	}
	return n
}
