package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docsage/docsage/internal/document"
)

var (
	amountRe       = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)
	periodRe       = regexp.MustCompile(`(?i)\d+\s*(?:days?|months?|years?)`)
	noticeRe       = regexp.MustCompile(`(?i)(\d+)\s*days?\s*notice`)
	paymentTermRe  = regexp.MustCompile(`(?i)(?:payment|rent|salary|fee).*?(?:dollars?|\$)`)
	penaltyRe      = regexp.MustCompile(`(?i)(?:penalty|late fee|interest|damages).*?(?:dollars?|\$)`)
	durationRe     = regexp.MustCompile(`(?i)(?:term|duration|length).*?\d+\s*(?:days?|months?|years?)`)
	deadlineRe     = regexp.MustCompile(`(?i)(?:deadline|due|expire).*?\d+\s*(?:days?|months?|years?)`)
	noticePeriodRe = regexp.MustCompile(`(?i)(?:notice|terminate).*?\d+\s*(?:days?|months?|years?)`)
)

// Summarize produces the document-wide analysis summary attached to
// high-confidence answers. A failure in any step degrades to the fixed
// default summary rather than dropping the response.
func Summarize(doc document.Document, citations []ProcessedCitation) (summary AnalysisSummary) {
	defer func() {
		if recover() != nil {
			summary = defaultSummary()
		}
	}()

	return AnalysisSummary{
		KeyPoints:       summaryKeyPoints(doc, citations),
		RisksIdentified: identifyRisks(doc),
		ComplianceScore: complianceScore(doc),
	}
}

// summaryKeyPoints scans the whole document for notable terms, then adds
// one-line digests of the first two citations. Capped at five points.
func summaryKeyPoints(doc document.Document, citations []ProcessedCitation) []string {
	var keyPoints []string
	allContent := joinSections(doc)
	lowerContent := strings.ToLower(allContent)

	if amount := amountRe.FindString(allContent); amount != "" {
		keyPoints = append(keyPoints, "Payment amount: "+amount)
	}
	if period := periodRe.FindString(allContent); period != "" {
		keyPoints = append(keyPoints, "Contract duration: "+period)
	}
	if strings.Contains(lowerContent, "terminate") {
		keyPoints = append(keyPoints, "Contract includes termination provisions")
	}
	if strings.Contains(lowerContent, "confidential") {
		keyPoints = append(keyPoints, "Confidentiality obligations included")
	}

	for i, citation := range citations {
		if i >= 2 {
			break
		}
		if digest := summarizeCitation(citation.Text); digest != "" {
			keyPoints = append(keyPoints, digest)
		}
	}

	if len(keyPoints) > 5 {
		keyPoints = keyPoints[:5]
	}
	return keyPoints
}

// identifyRisks flags high-risk contract language, capped at five risks.
func identifyRisks(doc document.Document) []string {
	var risks []string
	allContent := strings.ToLower(joinSections(doc))

	if strings.Contains(allContent, "indemnify") || strings.Contains(allContent, "hold harmless") {
		risks = append(risks, "Indemnification obligations - potential liability exposure")
	}
	if strings.Contains(allContent, "liquidated damages") || strings.Contains(allContent, "penalty") {
		risks = append(risks, "Liquidated damages or penalties for breach")
	}
	if strings.Contains(allContent, "non-compete") || strings.Contains(allContent, "restrict") {
		risks = append(risks, "Non-compete or restrictive covenants")
	}
	if strings.Contains(allContent, "exclusive") && strings.Contains(allContent, "right") {
		risks = append(risks, "Exclusive rights granted - limits future options")
	}
	if strings.Contains(allContent, "warrant") && strings.Contains(allContent, "represent") {
		risks = append(risks, "Warranties and representations - potential liability")
	}
	if strings.Contains(allContent, "confidential") && strings.Contains(allContent, "proprietary") {
		risks = append(risks, "Confidentiality obligations - breach could result in damages")
	}
	if match := noticeRe.FindStringSubmatch(allContent); match != nil {
		risks = append(risks, fmt.Sprintf("Short termination notice period (%s days)", match[1]))
	}
	if strings.Contains(allContent, "late fee") || strings.Contains(allContent, "interest") {
		risks = append(risks, "Late payment fees or interest charges")
	}

	if len(risks) > 5 {
		risks = risks[:5]
	}
	return risks
}

// complianceScore starts at a base of 70 and adjusts for compliance
// indicators present in the document, clamped to [0, 100].
func complianceScore(doc document.Document) int {
	score := 70
	allContent := strings.ToLower(joinSections(doc))

	if strings.Contains(allContent, "comply") || strings.Contains(allContent, "compliance") {
		score += 10
	}
	if strings.Contains(allContent, "governing law") || strings.Contains(allContent, "jurisdiction") {
		score += 5
	}
	if strings.Contains(allContent, "privacy") || strings.Contains(allContent, "data protection") {
		score += 5
	}
	if strings.Contains(allContent, "audit") || strings.Contains(allContent, "inspection") {
		score += 5
	}
	if strings.Contains(allContent, "certification") || strings.Contains(allContent, "license") {
		score += 5
	}

	if strings.Contains(allContent, "waiver") && strings.Contains(allContent, "liability") {
		score -= 10
	}
	if strings.Contains(allContent, "disclaim") && strings.Contains(allContent, "warranty") {
		score -= 5
	}
	if strings.Contains(allContent, "force majeure") && strings.Contains(allContent, "excuse") {
		score -= 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// summarizeCitation reduces citation text to a one-line digest. Returns
// the empty string when the text carries nothing worth surfacing.
func summarizeCitation(text string) string {
	if len(text) < 20 {
		return ""
	}
	lowerText := strings.ToLower(text)

	if amount := amountRe.FindString(text); amount != "" {
		return "Payment: " + amount
	}
	if period := periodRe.FindString(text); period != "" {
		return "Duration: " + period
	}
	if strings.Contains(lowerText, "shall") || strings.Contains(lowerText, "must") {
		return "Contains specific obligations"
	}
	if strings.Contains(lowerText, "terminate") || strings.Contains(lowerText, "end") {
		return "Includes termination provisions"
	}

	words := strings.Split(text, " ")
	if len(words) > 8 {
		words = words[:8]
	}
	lead := strings.Join(words, " ")
	if len(lead) > 20 {
		return lead + "..."
	}
	return ""
}

func defaultSummary() AnalysisSummary {
	return AnalysisSummary{
		KeyPoints: []string{
			"Document contains standard legal terms",
			"Review all sections carefully",
			"Consult with legal counsel if needed",
		},
		RisksIdentified: []string{
			"Standard contract risks apply",
			"Review termination provisions",
			"Check payment and liability terms",
		},
		ComplianceScore: 75,
	}
}

// AnalyzeStructure reports section and page counts, the early key
// sections and the inferred document type.
func AnalyzeStructure(doc document.Document) DocumentStructure {
	var keySections []string
	for _, section := range doc.Sections {
		if n := section.Number(); n > 0 && n <= 5 {
			keySections = append(keySections, section.Section)
		}
	}
	return DocumentStructure{
		TotalSections: len(doc.Sections),
		TotalPages:    doc.Pages(),
		KeySections:   keySections,
		DocumentType:  document.TypeFromTitle(doc.Title),
	}
}

// ExtractFinancialTerms pulls dollar amounts, payment phrases and penalty
// phrases out of the document.
func ExtractFinancialTerms(doc document.Document) FinancialTerms {
	allContent := joinSections(doc)
	return FinancialTerms{
		Amounts:      capMatches(amountRe.FindAllString(allContent, -1), 5),
		PaymentTerms: capMatches(paymentTermRe.FindAllString(allContent, -1), 3),
		Penalties:    capMatches(penaltyRe.FindAllString(allContent, -1), 3),
	}
}

// ExtractTemporalTerms pulls durations, deadlines and notice periods out
// of the document.
func ExtractTemporalTerms(doc document.Document) TemporalTerms {
	allContent := joinSections(doc)
	return TemporalTerms{
		Durations:     capMatches(durationRe.FindAllString(allContent, -1), 3),
		Deadlines:     capMatches(deadlineRe.FindAllString(allContent, -1), 3),
		NoticePeriods: capMatches(noticePeriodRe.FindAllString(allContent, -1), 3),
	}
}

func joinSections(doc document.Document) string {
	contents := make([]string, len(doc.Sections))
	for i, section := range doc.Sections {
		contents[i] = section.Content
	}
	return strings.Join(contents, " ")
}

func capMatches(matches []string, n int) []string {
	if matches == nil {
		return []string{}
	}
	if len(matches) > n {
		return matches[:n]
	}
	return matches
}
