package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/document"
)

func serviceDoc() document.Document {
	return document.Builtin()[3]
}

func TestSummarize_Employment(t *testing.T) {
	summary := Summarize(employmentDoc(), nil)

	assert.Contains(t, summary.KeyPoints, "Payment amount: $125,000.00")
	assert.Contains(t, summary.KeyPoints, "Contract includes termination provisions")
	assert.Contains(t, summary.KeyPoints, "Confidentiality obligations included")
	assert.Contains(t, summary.RisksIdentified, "Confidentiality obligations - breach could result in damages")
	assert.Equal(t, 70, summary.ComplianceScore)
}

func TestSummarize_CitationDigests(t *testing.T) {
	citations := []ProcessedCitation{
		{SectionID: "2.1", Text: "Monthly payment of $5,000.00 is due on the first."},
		{SectionID: "5.1", Text: "Either party shall give written notice before ending."},
		{SectionID: "6.1", Text: "Tenant must keep the premises in good repair."},
	}

	summary := Summarize(leaseDoc(), citations)

	// Only the first two citations contribute digests.
	assert.Contains(t, summary.KeyPoints, "Payment: $5,000.00")
	assert.LessOrEqual(t, len(summary.KeyPoints), 5)
}

func TestComplianceScore_ServiceAgreement(t *testing.T) {
	// "comply" and "data protection" both appear in the service contract.
	summary := Summarize(serviceDoc(), nil)
	assert.Equal(t, 85, summary.ComplianceScore)
}

func TestSummarizeCitation(t *testing.T) {
	assert.Equal(t, "Payment: $5,000.00", summarizeCitation("Monthly payment of $5,000.00 is due on the first."))
	assert.Equal(t, "Duration: 30 days", summarizeCitation("The review period lasts 30 days from signing."))
	assert.Equal(t, "Contains specific obligations", summarizeCitation("The tenant shall keep the premises clean."))
	assert.Equal(t, "Includes termination provisions", summarizeCitation("Either party may terminate the arrangement."))
	assert.Equal(t, "", summarizeCitation("too short"))
}

func TestSummarizeCitation_GenericLead(t *testing.T) {
	got := summarizeCitation("Alpha beta gamma delta epsilon zeta eta theta iota kappa")
	assert.Equal(t, "Alpha beta gamma delta epsilon zeta eta theta...", got)
}

func TestDefaultSummary(t *testing.T) {
	summary := defaultSummary()

	assert.Len(t, summary.KeyPoints, 3)
	assert.Len(t, summary.RisksIdentified, 3)
	assert.Equal(t, 75, summary.ComplianceScore)
}

func TestAnalyzeStructure_Lease(t *testing.T) {
	structure := AnalyzeStructure(leaseDoc())

	assert.Equal(t, 8, structure.TotalSections)
	assert.Equal(t, 7, structure.TotalPages)
	assert.Equal(t, []string{"1.1", "2.1", "2.2", "3.1", "4.1", "5.1"}, structure.KeySections)
	assert.Equal(t, "Lease Agreement", structure.DocumentType)
}

func TestAnalyzeStructure_DocumentTypes(t *testing.T) {
	docs := document.Builtin()
	types := make([]string, len(docs))
	for i, doc := range docs {
		types[i] = AnalyzeStructure(doc).DocumentType
	}
	assert.Equal(t, []string{
		"Lease Agreement",
		"Employment Contract",
		"Purchase Agreement",
		"Service Agreement",
		"Partnership Agreement",
	}, types)
}

func TestExtractFinancialTerms_Lease(t *testing.T) {
	terms := ExtractFinancialTerms(leaseDoc())

	assert.Equal(t, []string{"$8,500.00"}, terms.Amounts)
	assert.NotEmpty(t, terms.PaymentTerms)
	assert.Empty(t, terms.Penalties)
}

func TestExtractFinancialTerms_Caps(t *testing.T) {
	terms := ExtractFinancialTerms(document.Builtin()[2])

	assert.LessOrEqual(t, len(terms.Amounts), 5)
	assert.LessOrEqual(t, len(terms.PaymentTerms), 3)
	assert.LessOrEqual(t, len(terms.Penalties), 3)
	assert.Contains(t, terms.Amounts, "$2,000,000.00")
}

func TestExtractTemporalTerms_Lease(t *testing.T) {
	terms := ExtractTemporalTerms(leaseDoc())

	require.NotEmpty(t, terms.Durations)
	assert.Contains(t, terms.Durations[0], "36 months")
	assert.NotEmpty(t, terms.NoticePeriods)
	assert.LessOrEqual(t, len(terms.Deadlines), 3)
}

func TestExtractTemporalTerms_EmptyDocument(t *testing.T) {
	doc := document.Document{ID: "empty", Title: "Empty"}
	terms := ExtractTemporalTerms(doc)

	assert.Empty(t, terms.Durations)
	assert.Empty(t, terms.Deadlines)
	assert.Empty(t, terms.NoticePeriods)
}
