// Package taxonomy holds the curated category taxonomy used for local matching.
//
// The data is declared as Go literals grouped by department. A Store is built
// once from those groups and never changes afterwards; matchers receive it as a
// dependency instead of reaching for package globals.
package taxonomy

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/cartwise/backend/internal/domain"
)

// Group names, in the order the groups are concatenated into the store
const (
	GroupTopLevel  = "top-level"
	GroupComputer  = "computer"
	GroupCable     = "cable"
	GroupPhone     = "phone"
	GroupTV        = "tv"
	GroupGaming    = "gaming"
	GroupCamera    = "camera"
	GroupAppliance = "appliance"
	GroupSmartHome = "smart-home"
)

// pickerIDs is the subset of categories offered in UI category pickers
var pickerIDs = []string{
	"abcat0100000",       // TV & Home Theater
	"abcat0500000",       // Computers & Tablets
	"abcat0502000",       // Laptops
	"abcat0800000",       // Cell Phones
	"abcat0400000",       // Cameras, Camcorders & Drones
	"abcat0700000",       // Video Games
	"abcat0900000",       // Appliances
	"abcat0200000",       // Audio
	"pcmcat254000050002", // Smart Home, Security & WiFi
	"pcmcat748300666861", // Wearable Technology
	"abcat0101000",       // TVs
	"pcmcat209000050006", // Tablets
}

// Group is a named slice of the taxonomy
type Group struct {
	Name    string
	Entries []domain.CategoryEntry
}

// Store is an immutable, ordered collection of category entries.
// It is safe for concurrent use because nothing mutates it after New returns.
type Store struct {
	entries []domain.CategoryEntry
	groups  []groupSpan
	picker  []int
}

type groupSpan struct {
	name       string
	start, end int
}

// DefaultGroups returns the built-in taxonomy groups in declaration order
func DefaultGroups() []Group {
	return []Group{
		{Name: GroupTopLevel, Entries: topLevelCategories},
		{Name: GroupComputer, Entries: computerCategories},
		{Name: GroupCable, Entries: cableCategories},
		{Name: GroupPhone, Entries: phoneCategories},
		{Name: GroupTV, Entries: tvCategories},
		{Name: GroupGaming, Entries: gamingCategories},
		{Name: GroupCamera, Entries: cameraCategories},
		{Name: GroupAppliance, Entries: applianceCategories},
		{Name: GroupSmartHome, Entries: smartHomeCategories},
	}
}

var defaultStore = sync.OnceValue(func() *Store {
	store, err := New(DefaultGroups(), pickerIDs)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: invalid built-in taxonomy: %v", err))
	}
	return store
})

// Default returns the process-wide store built from the built-in groups
func Default() *Store {
	return defaultStore()
}

// New concatenates the groups into a store. Entries and their keyword slices
// are copied, so later changes to the inputs do not leak into the store.
// Duplicate ids, empty ids and picker ids missing from the groups are rejected.
func New(groups []Group, picker []string) (*Store, error) {
	s := &Store{}
	seen := make(map[string]int)

	for _, g := range groups {
		span := groupSpan{name: g.Name, start: len(s.entries)}
		for _, e := range g.Entries {
			if e.ID == "" {
				return nil, fmt.Errorf("group %q: entry %q has empty id", g.Name, e.Name)
			}
			if prev, ok := seen[e.ID]; ok {
				return nil, fmt.Errorf("group %q: duplicate id %s (%q and %q)",
					g.Name, e.ID, s.entries[prev].Name, e.Name)
			}
			seen[e.ID] = len(s.entries)
			e.Keywords = slices.Clone(e.Keywords)
			s.entries = append(s.entries, e)
		}
		span.end = len(s.entries)
		s.groups = append(s.groups, span)
	}

	for _, id := range picker {
		idx, ok := seen[id]
		if !ok {
			return nil, fmt.Errorf("picker id %s is not in the taxonomy", id)
		}
		s.picker = append(s.picker, idx)
	}

	return s, nil
}

// Len returns the number of entries in the store
func (s *Store) Len() int {
	return len(s.entries)
}

// All yields every entry in declaration order.
// The yielded pointers are shared and must not be modified.
func (s *Store) All() iter.Seq[*domain.CategoryEntry] {
	return func(yield func(*domain.CategoryEntry) bool) {
		for i := range s.entries {
			if !yield(&s.entries[i]) {
				return
			}
		}
	}
}

// Entries returns a copy of every entry in declaration order
func (s *Store) Entries() []domain.CategoryEntry {
	return slices.Clone(s.entries)
}

// Picker returns the UI picker subset
func (s *Store) Picker() []domain.CategoryEntry {
	out := make([]domain.CategoryEntry, 0, len(s.picker))
	for _, idx := range s.picker {
		out = append(out, s.entries[idx])
	}
	return out
}

// GroupNames returns the group names in concatenation order
func (s *Store) GroupNames() []string {
	names := make([]string, 0, len(s.groups))
	for _, g := range s.groups {
		names = append(names, g.name)
	}
	return names
}

// Group returns the entries of the named group, or false if there is none
func (s *Store) Group(name string) ([]domain.CategoryEntry, bool) {
	for _, g := range s.groups {
		if g.name == name {
			return slices.Clone(s.entries[g.start:g.end]), true
		}
	}
	return nil, false
}
