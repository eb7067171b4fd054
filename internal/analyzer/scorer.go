package analyzer

import (
	"sort"
	"strings"

	"github.com/docsage/docsage/internal/document"
)

// maxScoredSections caps the shortlist returned by ScoreSections.
const maxScoredSections = 3

// keywordCategory groups the terms that signal one kind of question.
// Categories are held in a slice, not a map, so scoring order is fixed.
type keywordCategory struct {
	name     string
	keywords []string
}

var scoringCategories = []keywordCategory{
	{"payment", []string{"payment", "rent", "salary", "fee", "cost", "price", "amount", "dollars", "$"}},
	{"termination", []string{"terminate", "termination", "end", "cancel", "notice", "days", "months"}},
	{"duration", []string{"term", "duration", "length", "months", "years", "commencing", "ending"}},
	{"use", []string{"use", "purpose", "premises", "office", "business", "activities"}},
	{"utilities", []string{"utilities", "electricity", "water", "gas", "internet", "heating", "air conditioning"}},
	{"maintenance", []string{"maintain", "repair", "condition", "alterations", "improvements"}},
	{"benefits", []string{"benefits", "vacation", "holidays", "insurance", "401k", "bonus"}},
	{"confidentiality", []string{"confidential", "proprietary", "disclose", "information"}},
	{"noncompete", []string{"compete", "competition", "radius", "miles", "months"}},
	{"warranty", []string{"warrant", "represent", "title", "liens", "encumbrances"}},
	{"due_diligence", []string{"due diligence", "investigation", "review", "examination"}},
	{"uptime", []string{"uptime", "availability", "99.9%", "maintenance", "support"}},
	{"security", []string{"security", "data protection", "privacy", "compliance"}},
}

// semanticCategories is a second, smaller variant table. It overlaps the
// scoring table on purpose: a category whose variant appears in both the
// query and the section earns one extra point, which boosts recall for
// paraphrased questions.
var semanticCategories = []keywordCategory{
	{"payment", []string{"payment", "rent", "fee", "amount", "dollars"}},
	{"termination", []string{"terminate", "end", "cancel", "notice"}},
	{"duration", []string{"term", "length", "commencing", "ending"}},
	{"use", []string{"use", "purpose", "premises", "office"}},
	{"utilities", []string{"utilities", "electricity", "water", "gas"}},
	{"maintenance", []string{"maintain", "repair", "condition"}},
	{"benefits", []string{"benefits", "vacation", "holidays", "insurance"}},
	{"confidentiality", []string{"confidential", "proprietary", "disclose"}},
	{"noncompete", []string{"compete", "competition", "radius"}},
	{"warranty", []string{"warrant", "represent", "title"}},
	{"due_diligence", []string{"due diligence", "investigation", "review"}},
	{"uptime", []string{"uptime", "availability", "99.9%"}},
	{"security", []string{"security", "data protection", "privacy"}},
}

// ScoreSections ranks the document's sections against a free-text query
// and returns at most three, best first. A keyword that appears in both
// the query and the section content scores 2, a query keyword missing
// from the content scores 1, and each semantic category matched on both
// sides adds 1 more. Sections that score nothing are dropped; ties keep
// document order.
func ScoreSections(query string, doc document.Document) []ScoredSection {
	lowerQuery := strings.ToLower(query)
	if strings.TrimSpace(lowerQuery) == "" {
		return nil
	}

	var scored []ScoredSection
	for _, section := range doc.Sections {
		lowerContent := strings.ToLower(section.Content)

		score := 0
		for _, category := range scoringCategories {
			for _, keyword := range category.keywords {
				if !strings.Contains(lowerQuery, keyword) {
					continue
				}
				if strings.Contains(lowerContent, keyword) {
					score += 2
				} else {
					score++
				}
			}
		}
		score += semanticMatches(lowerQuery, lowerContent)

		if score > 0 {
			scored = append(scored, ScoredSection{Section: section, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > maxScoredSections {
		scored = scored[:maxScoredSections]
	}
	return scored
}

// semanticMatches counts the categories whose variant terms appear in
// both the query and the section content.
func semanticMatches(lowerQuery, lowerContent string) int {
	matches := 0
	for _, category := range semanticCategories {
		for _, term := range category.keywords {
			if strings.Contains(lowerQuery, term) && strings.Contains(lowerContent, term) {
				matches++
				break
			}
		}
	}
	return matches
}
