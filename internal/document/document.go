package document

import (
	"strconv"
	"strings"
)

// Section is a titled, paged excerpt of a contract. The section label is a
// dotted numeric string like "2.1" and must parse as a float for ordering.
type Section struct {
	ID      string `json:"id" yaml:"id"`
	Section string `json:"section" yaml:"section"`
	Page    int    `json:"page" yaml:"page"`
	Content string `json:"content" yaml:"content"`
}

// Document is static reference data: loaded once at startup, never mutated.
type Document struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Number returns the section label parsed as a float, or 0 if unparseable.
func (s Section) Number() float64 {
	n, err := strconv.ParseFloat(s.Section, 64)
	if err != nil {
		return 0
	}
	return n
}

// FindSection returns the section with the given label.
func (d Document) FindSection(label string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Section == label {
			return s, true
		}
	}
	return Section{}, false
}

// Pages returns the highest page number across sections.
func (d Document) Pages() int {
	max := 0
	for _, s := range d.Sections {
		if s.Page > max {
			max = s.Page
		}
	}
	return max
}

var friendlyNames = map[string]string{
	"lease-agreement":       "lease agreement",
	"employment-contract":   "employment contract",
	"purchase-agreement":    "purchase agreement",
	"service-agreement":     "service agreement",
	"partnership-agreement": "partnership agreement",
}

// FriendlyName returns the conversational name for a document id,
// falling back to "document" for unknown ids.
func FriendlyName(id string) string {
	if name, ok := friendlyNames[id]; ok {
		return name
	}
	return "document"
}

// TypeFromTitle classifies a document by keywords in its title.
func TypeFromTitle(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "lease"):
		return "Lease Agreement"
	case strings.Contains(lower, "employment"):
		return "Employment Contract"
	case strings.Contains(lower, "purchase"):
		return "Purchase Agreement"
	case strings.Contains(lower, "service"):
		return "Service Agreement"
	case strings.Contains(lower, "partnership"):
		return "Partnership Agreement"
	default:
		return "Legal Contract"
	}
}
