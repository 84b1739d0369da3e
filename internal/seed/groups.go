package seed

import "sort"

// StudentName is a generated (first, last) name pair
type StudentName struct {
	FirstName string
	LastName  string
}

// String returns "First Last"
func (s StudentName) String() string {
	return s.FirstName + " " + s.LastName
}

// Groups maps group names to their members and remembers insertion order,
// which is the iteration order used for tie-breaking during assignment.
type Groups struct {
	names   []string
	members map[string][]StudentName
}

// NewGroups creates an empty mapping holding the given group names
func NewGroups(names ...string) *Groups {
	g := &Groups{members: make(map[string][]StudentName, len(names))}
	for _, n := range names {
		g.Add(n)
	}
	return g
}

// Add registers an empty group. It returns false if the name is already taken.
func (g *Groups) Add(name string) bool {
	if _, ok := g.members[name]; ok {
		return false
	}
	g.names = append(g.names, name)
	g.members[name] = []StudentName{}
	return true
}

// Has reports whether the group exists
func (g *Groups) Has(name string) bool {
	_, ok := g.members[name]
	return ok
}

// Names returns the group names in insertion order
func (g *Groups) Names() []string {
	return append([]string(nil), g.names...)
}

// Members returns the students assigned to a group
func (g *Groups) Members(name string) []StudentName {
	return g.members[name]
}

// Size returns the number of students in a group
func (g *Groups) Size(name string) int {
	return len(g.members[name])
}

// Len returns the number of groups
func (g *Groups) Len() int {
	return len(g.names)
}

// TotalMembers returns the number of students across all groups
func (g *Groups) TotalMembers() int {
	total := 0
	for _, m := range g.members {
		total += len(m)
	}
	return total
}

func (g *Groups) append(name string, student StudentName) {
	g.members[name] = append(g.members[name], student)
}

// rankBySize orders group names by member count ascending. Ties keep insertion order.
func (g *Groups) rankBySize() []string {
	ranked := g.Names()
	sort.SliceStable(ranked, func(i, j int) bool {
		return g.Size(ranked[i]) < g.Size(ranked[j])
	})
	return ranked
}
