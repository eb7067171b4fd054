package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docsage/docsage/internal/document"
)

var (
	boilerplatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)This.*?Agreement.*?between.*?and.*?\.`),
		regexp.MustCompile(`(?i)The parties hereby.*?\.`),
		regexp.MustCompile(`(?i)This document.*?\.`),
	}
	whitespaceRe   = regexp.MustCompile(`\s+`)
	trailingDotsRe = regexp.MustCompile(`\.+$`)
	dollarAmountRe = regexp.MustCompile(`\$[\d,]+`)
	timePeriodRe   = regexp.MustCompile(`(?i)\d+\s*(days?|months?|years?)`)
)

const noAnswerTemplate = `I don't see specific information about "%s" in this %s. You might want to ask about:
• Payment terms and amounts
• Contract duration and termination
• Rights and obligations
• Specific clauses or sections
• Compliance requirements

Or try rephrasing your question to be more specific about what you're looking for.`

// Synthesize turns the ranked sections into a natural-language answer.
// The same (query, sections) pair always yields the same answer: this is
// a fixed rule cascade, checked in priority order, not free generation.
func Synthesize(query string, sections []ScoredSection, documentID string) string {
	if len(sections) == 0 {
		return NoAnswerMessage(query, documentID)
	}

	lowerQuery := strings.ToLower(query)

	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, stripBoilerplate(s.Section.Content))
	}
	keyInfo := strings.Join(parts, " ")
	lowerInfo := strings.ToLower(keyInfo)

	if containsAny(lowerQuery, "how much", "cost", "payment") {
		if amount := dollarAmountRe.FindString(keyInfo); amount != "" {
			return fmt.Sprintf("💰 Based on the contract, the payment amount is %s. %s", amount, keyInfo)
		}
	}

	if containsAny(lowerQuery, "when", "time", "deadline") {
		if period := timePeriodRe.FindString(keyInfo); period != "" {
			return fmt.Sprintf("⏰ The contract specifies %s. %s", period, keyInfo)
		}
	}

	if containsAny(lowerQuery, "can i", "allowed", "permitted") {
		if containsAny(lowerInfo, "shall", "must") {
			return fmt.Sprintf("✅ Yes, you are allowed to do this according to the contract. %s", keyInfo)
		}
		if containsAny(lowerInfo, "not", "prohibited") {
			return fmt.Sprintf("❌ No, this is not permitted under the contract. %s", keyInfo)
		}
	}

	if containsAny(lowerQuery, "terminate", "end", "cancel") {
		return fmt.Sprintf("🚪 To terminate this contract, you need to provide notice. %s", keyInfo)
	}

	return fmt.Sprintf("Based on the contract, %s", keyInfo)
}

// NoAnswerMessage is returned when no section matched the query. It names
// the document type and suggests topics rather than a bare "I don't know".
func NoAnswerMessage(query, documentID string) string {
	return fmt.Sprintf(noAnswerTemplate, query, document.FriendlyName(documentID))
}

// stripBoilerplate removes recital phrasing ("This Agreement ... between
// ... and ...") and normalizes whitespace. Each pattern is removed at its
// first occurrence only; if stripping would leave nothing, the original
// content is kept.
func stripBoilerplate(content string) string {
	info := content
	for _, re := range boilerplatePatterns {
		if loc := re.FindStringIndex(info); loc != nil {
			info = info[:loc[0]] + info[loc[1]:]
		}
	}
	info = strings.TrimSpace(info)
	info = whitespaceRe.ReplaceAllString(info, " ")
	info = trailingDotsRe.ReplaceAllString(info, "")
	if info == "" {
		return content
	}
	return info
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
