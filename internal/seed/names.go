package seed

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Courses is the built-in course catalogue
var Courses = []string{
	"Aviation",
	"Art",
	"Chemistry",
	"Economics",
	"Engineering",
	"Journalism",
	"Music",
	"Oceanography",
	"Maths",
	"Computer Science",
}

// FirstNames is the built-in pool of first names
var FirstNames = []string{
	"Noel", "Joel", "Mateo", "Ergi", "Luis",
	"Anna", "Hannah", "Sophia", "Emma", "Marie",
	"Sam", "David", "Max", "Alice", "Maria",
	"Bob", "George", "Marina", "Alex", "Jason",
}

// LastNames is the built-in pool of last names
var LastNames = []string{
	"Collymore", "Stoll", "Verlice", "Adler", "Huxley",
	"Ledger", "Hayes", "Ford", "Finnegan", "Beckett",
	"Phillips", "Rogers", "Hetfield", "Fafara", "Friden",
	"Stanne", "Hammet", "Sweigart", "Rhinehart", "Dickens",
}

// NamePool holds the names the generator draws from
type NamePool struct {
	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
	Courses    []string `yaml:"courses"`
}

// DefaultNamePool returns a copy of the built-in pool
func DefaultNamePool() NamePool {
	return NamePool{
		FirstNames: append([]string(nil), FirstNames...),
		LastNames:  append([]string(nil), LastNames...),
		Courses:    append([]string(nil), Courses...),
	}
}

// LoadNamePool reads a YAML names file. Lists missing from the file keep their
// built-in values.
func LoadNamePool(path string) (NamePool, error) {
	pool := DefaultNamePool()
	if path == "" {
		return pool, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pool, fmt.Errorf("read names file %s: %w", path, err)
	}

	var file NamePool
	if err := yaml.Unmarshal(data, &file); err != nil {
		return pool, fmt.Errorf("parse names file %s: %w", path, err)
	}

	if len(file.FirstNames) > 0 {
		pool.FirstNames = normalizeNames(file.FirstNames)
	}
	if len(file.LastNames) > 0 {
		pool.LastNames = normalizeNames(file.LastNames)
	}
	if len(file.Courses) > 0 {
		pool.Courses = dedupe(trimAll(file.Courses))
	}
	return pool, nil
}

// Capacity is the number of distinct (first, last) pairs the pool can produce
func (p NamePool) Capacity() int {
	return len(p.FirstNames) * len(p.LastNames)
}

// normalizeNames title-cases person names and drops blanks and duplicates.
func normalizeNames(names []string) []string {
	title := cases.Title(language.English)
	out := make([]string, 0, len(names))
	for _, n := range trimAll(names) {
		out = append(out, title.String(n))
	}
	return dedupe(out)
}

func trimAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// CourseDescription renders the catalogue description of a course, e.g.
// "Everything there is to know about Computer science".
func CourseDescription(name string) string {
	return "Everything there is to know about " + capitalize(name)
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	lower := cases.Lower(language.English).String(s)
	r, size := utf8.DecodeRuneInString(lower)
	if size == 0 {
		return lower
	}
	return cases.Upper(language.English).String(string(r)) + lower[size:]
}
