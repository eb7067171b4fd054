package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/docsage/docsage/internal/document"
)

// maxDisplayCitations is how many citations a response shows by default.
const maxDisplayCitations = 2

// sectionTopics maps the leading section number to a display topic.
// Numbers outside the table fall back to "Section {label}".
var sectionTopics = map[int]string{
	1: "Introduction and Parties",
	2: "Payment Terms",
	3: "Contract Duration",
	4: "Use and Purpose",
	5: "Termination",
	6: "Utilities and Services",
	7: "Maintenance and Repairs",
	8: "Additional Terms",
}

// citationLegalTerms feed the processed-citation relevance score.
var citationLegalTerms = []string{
	"payment", "terminate", "liability", "confidential", "warrant", "represent", "agree", "shall", "must",
}

// displayLegalTerms feed the display-selection score, a coarser variant.
var displayLegalTerms = []string{
	"payment", "terminate", "liability", "confidential", "warrant", "represent",
}

// FormatCitations converts scored sections into raw citations with a
// 100-character preview and a page reference.
func FormatCitations(sections []ScoredSection, documentID string) []Citation {
	citations := make([]Citation, 0, len(sections))
	for _, s := range sections {
		citations = append(citations, Citation{
			DocumentID: documentID,
			Section:    s.Section.Section,
			Page:       s.Section.Page,
			Text:       truncate(s.Section.Content, 100) + "...",
			Display:    fmt.Sprintf("Section %s", s.Section.Section),
			Reference:  fmt.Sprintf("Section %s on page %d", s.Section.Section, s.Section.Page),
			FullText:   s.Section.Content,
		})
	}
	return citations
}

// SelectTopCitations orders citations by display relevance and keeps the
// first maxCount, filling in default display fields. Ties keep input
// order, so repeated calls produce identical output.
func SelectTopCitations(citations []Citation, maxCount int) []Citation {
	sorted := append([]Citation(nil), citations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return displayRelevance(sorted[i]) > displayRelevance(sorted[j])
	})
	if len(sorted) > maxCount {
		sorted = sorted[:maxCount]
	}

	for i, c := range sorted {
		if c.Display == "" {
			sorted[i].Display = fmt.Sprintf("Section %s", c.Section)
		}
		if c.Reference == "" {
			sorted[i].Reference = fmt.Sprintf("Section %s on page %d", c.Section, c.Page)
		}
		if c.Text == "" {
			sorted[i].Text = extractKeyText(c.FullText)
		}
	}
	return sorted
}

// displayRelevance is the coarse score used only to pick which citations
// to show: earlier sections, longer content and legal vocabulary win.
func displayRelevance(c Citation) float64 {
	score := 0.0

	number := sectionNumber(c.Section)
	switch {
	case number <= 3:
		score += 2
	case number <= 5:
		score++
	}

	switch length := len(c.FullText); {
	case length > 200:
		score++
	case length > 100:
		score += 0.5
	}

	lowerContent := strings.ToLower(c.FullText)
	for _, term := range displayLegalTerms {
		if strings.Contains(lowerContent, term) {
			score += 0.5
		}
	}
	return score
}

// ProcessCitations resolves raw citations against the document and
// produces display-ready citations with clamped relevance scores. A
// citation whose section is missing from the document degrades to a
// fallback citation instead of failing.
func ProcessCitations(citations []Citation, doc document.Document) []ProcessedCitation {
	processed := make([]ProcessedCitation, 0, len(citations))
	for _, c := range citations {
		processed = append(processed, processCitation(c, doc))
	}
	return processed
}

func processCitation(c Citation, doc document.Document) ProcessedCitation {
	section, ok := doc.FindSection(c.Section)
	if !ok {
		return fallbackCitation(c)
	}

	text := c.Text
	if text == "" {
		text = extractKeyText(section.Content)
	}
	display := c.Display
	if display == "" {
		display = fmt.Sprintf("Section %s", c.Section)
	}
	reference := c.Reference
	if reference == "" {
		reference = fmt.Sprintf("Section %s on page %d", c.Section, c.Page)
	}
	fullText := c.FullText
	if fullText == "" {
		fullText = section.Content
	}

	return ProcessedCitation{
		SectionID:      c.Section,
		Page:           c.Page,
		Title:          citationTitle(c.Section, doc.Title),
		RelevanceScore: relevanceScore(c.Section, section),
		Text:           text,
		Display:        display,
		Reference:      reference,
		FullText:       fullText,
	}
}

// relevanceScore rates how important a cited section likely is: base 0.5,
// banded bonuses for early sections and long content, 0.05 per legal
// term present, clamped to [0,1].
func relevanceScore(label string, section document.Section) float64 {
	score := 0.5

	number := sectionNumber(label)
	switch {
	case number <= 3:
		score += 0.3
	case number <= 5:
		score += 0.2
	case number <= 7:
		score += 0.1
	}

	switch length := len(section.Content); {
	case length > 200:
		score += 0.2
	case length > 100:
		score += 0.1
	}

	lowerContent := strings.ToLower(section.Content)
	for _, term := range citationLegalTerms {
		if strings.Contains(lowerContent, term) {
			score += 0.05
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// fallbackCitation is emitted when the cited section does not exist in
// the document. Fixed score 0.3, placeholder text, never an error.
func fallbackCitation(c Citation) ProcessedCitation {
	text := c.Text
	if text == "" {
		text = "Section content not available"
	}
	display := c.Display
	if display == "" {
		display = fmt.Sprintf("Section %s", c.Section)
	}
	reference := c.Reference
	if reference == "" {
		reference = fmt.Sprintf("Section %s on page %d", c.Section, c.Page)
	}
	fullText := c.FullText
	if fullText == "" {
		fullText = "Full text not available"
	}

	return ProcessedCitation{
		SectionID:      c.Section,
		Page:           c.Page,
		Title:          fmt.Sprintf("Section %s", c.Section),
		RelevanceScore: 0.3,
		Text:           text,
		Display:        display,
		Reference:      reference,
		FullText:       fullText,
	}
}

// citationTitle names a citation from the topic table, qualified with the
// document title.
func citationTitle(label, documentTitle string) string {
	topic, ok := sectionTopics[int(sectionNumber(label))]
	if !ok {
		topic = fmt.Sprintf("Section %s", label)
	}
	return fmt.Sprintf("%s - %s", topic, documentTitle)
}

// CitationSummary renders a one-line provenance note for a citation set.
func CitationSummary(citations []ProcessedCitation) string {
	if len(citations) == 0 {
		return "No relevant citations found."
	}
	top := citations[0]
	if len(citations) == 1 {
		return fmt.Sprintf("Based on %s (Section %s)", top.Title, top.SectionID)
	}
	return fmt.Sprintf("Based on %d relevant sections, including %s (Section %s)", len(citations), top.Title, top.SectionID)
}

// ValidCitation reports whether a processed citation is well formed.
func ValidCitation(c ProcessedCitation) bool {
	return c.SectionID != "" &&
		c.Page > 0 &&
		c.Title != "" &&
		c.RelevanceScore >= 0 &&
		c.RelevanceScore <= 1
}

// SortCitationsByRelevance orders citations best first, preserving input
// order between equals.
func SortCitationsByRelevance(citations []ProcessedCitation) []ProcessedCitation {
	sorted := append([]ProcessedCitation(nil), citations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RelevanceScore > sorted[j].RelevanceScore
	})
	return sorted
}

// FilterCitationsByRelevance drops citations scoring below minScore.
func FilterCitationsByRelevance(citations []ProcessedCitation, minScore float64) []ProcessedCitation {
	filtered := make([]ProcessedCitation, 0, len(citations))
	for _, c := range citations {
		if c.RelevanceScore >= minScore {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// extractKeyText produces a short display snippet: boilerplate stripped,
// capped at 150 characters.
func extractKeyText(content string) string {
	if content == "" {
		return ""
	}
	text := stripBoilerplate(content)
	if len(text) > 150 {
		text = truncate(text, 150) + "..."
	}
	return text
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func sectionNumber(label string) float64 {
	n, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return 0
	}
	return n
}

// CitationCache memoizes processed citations per document id. There is no
// invalidation beyond Clear: callers must clear it whenever the corpus
// changes. Concurrent writers to the same key are last-write-wins, which
// is harmless because processing is idempotent.
type CitationCache struct {
	mu      sync.RWMutex
	entries map[string][]ProcessedCitation
}

func NewCitationCache() *CitationCache {
	return &CitationCache{entries: make(map[string][]ProcessedCitation)}
}

// Get returns the cached citations for a document id.
func (c *CitationCache) Get(documentID string) ([]ProcessedCitation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	citations, ok := c.entries[documentID]
	return citations, ok
}

// Set stores citations for a document id, replacing any previous entry.
func (c *CitationCache) Set(documentID string, citations []ProcessedCitation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[documentID] = citations
}

// Clear removes every cached entry.
func (c *CitationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]ProcessedCitation)
}
