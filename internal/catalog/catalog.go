// Package catalog holds the static course reference data and the lookup and
// ranking helpers built on it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

const (
	// Instructor is attached to every matched course detail.
	Instructor = "Dr. Sarah Johnson"
	// PlaceholderTitle is returned for ids that are not in the catalog.
	PlaceholderTitle = "Custom Course"

	detailDescription = "This comprehensive course guides you from core concepts to practical application through structured lessons, hands-on exercises and real-world projects."
)

var detailSkills = []string{"Problem Solving", "Hands-on Projects", "Industry Best Practices", "Critical Thinking"}

// ErrEmptyCatalog is returned when a catalog file contains no courses.
var ErrEmptyCatalog = errors.New("catalog has no courses")

// Entry is one course of the reference data.
type Entry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Rating      float64  `yaml:"rating"`
	Difficulty  string   `yaml:"difficulty"`
	Skills      []string `yaml:"skills"`
	Description string   `yaml:"description"`
}

// Detail is what a course lookup displays.
type Detail struct {
	ID          string
	Title       string
	Rating      float64
	Difficulty  string
	Instructor  string
	Skills      []string
	Description string
	Placeholder bool
}

type catalogFile struct {
	Courses []Entry `yaml:"courses"`
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from path. An empty path yields the embedded catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Courses) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{entries: make([]Entry, 0, len(file.Courses)), byID: make(map[string]int, len(file.Courses))}
	for i, entry := range file.Courses {
		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" {
			return nil, fmt.Errorf("course %d: id is required", i)
		}
		if _, dup := c.byID[entry.ID]; dup {
			return nil, fmt.Errorf("course %d: duplicate id %q", i, entry.ID)
		}
		c.byID[entry.ID] = len(c.entries)
		c.entries = append(c.entries, entry)
	}
	return c, nil
}

// Entries returns a copy of the catalog in file order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds a course by exact id. It never fails: an unknown id yields a
// placeholder detail echoing the id.
func (c *Catalog) Lookup(id string) Detail {
	idx, ok := c.byID[id]
	if !ok {
		return Detail{ID: id, Title: PlaceholderTitle, Placeholder: true}
	}
	entry := c.entries[idx]
	return Detail{
		ID:          entry.ID,
		Title:       entry.Title,
		Rating:      entry.Rating,
		Difficulty:  entry.Difficulty,
		Instructor:  Instructor,
		Skills:      append([]string(nil), detailSkills...),
		Description: detailDescription,
	}
}
