package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/document"
)

func scoredSection(label string, page int, content string) ScoredSection {
	return ScoredSection{
		Section: document.Section{ID: "test-" + label, Section: label, Page: page, Content: content},
		Score:   3,
	}
}

func TestSynthesize_PaymentAnswer(t *testing.T) {
	sections := ScoreSections("How much is the payment?", leaseDoc())
	require.NotEmpty(t, sections)

	answer := Synthesize("How much is the payment?", sections, "lease-agreement")

	assert.True(t, strings.HasPrefix(answer, "💰 Based on the contract, the payment amount is $8,500"), answer)
}

func TestSynthesize_TimeAnswer(t *testing.T) {
	sections := []ScoredSection{scoredSection("3.1", 3, leaseDoc().Sections[3].Content)}

	answer := Synthesize("When does the lease term start?", sections, "lease-agreement")

	assert.True(t, strings.HasPrefix(answer, "⏰ The contract specifies 36 months."), answer)
}

func TestSynthesize_PermissionGranted(t *testing.T) {
	sections := []ScoredSection{scoredSection("4.1", 4, leaseDoc().Sections[4].Content)}

	answer := Synthesize("Can I use the premises for an office?", sections, "lease-agreement")

	assert.True(t, strings.HasPrefix(answer, "✅ Yes, you are allowed"), answer)
}

func TestSynthesize_PermissionDenied(t *testing.T) {
	sections := []ScoredSection{scoredSection("9.1", 9, "Subletting of the premises is prohibited.")}

	answer := Synthesize("Am I allowed to sublet?", sections, "lease-agreement")

	assert.True(t, strings.HasPrefix(answer, "❌ No, this is not permitted"), answer)
}

func TestSynthesize_Termination(t *testing.T) {
	sections := []ScoredSection{scoredSection("5.1", 5, leaseDoc().Sections[5].Content)}

	answer := Synthesize("How do I terminate this lease?", sections, "lease-agreement")

	assert.True(t, strings.HasPrefix(answer, "🚪 To terminate this contract, you need to provide notice."), answer)
	assert.Contains(t, answer, "ninety (90) days")
}

func TestSynthesize_DefaultAnswer(t *testing.T) {
	sections := []ScoredSection{scoredSection("5.1", 5, employmentDoc().Sections[5].Content)}

	answer := Synthesize("Tell me about insurance", sections, "employment-contract")

	assert.True(t, strings.HasPrefix(answer, "Based on the contract, "), answer)
}

func TestSynthesize_NoSections(t *testing.T) {
	answer := Synthesize("something obscure", nil, "lease-agreement")

	assert.Contains(t, answer, `I don't see specific information about "something obscure"`)
	assert.Contains(t, answer, "lease agreement")
	assert.Contains(t, answer, "Payment terms and amounts")
}

func TestNoAnswerMessage_UnknownDocument(t *testing.T) {
	message := NoAnswerMessage("anything", "mystery-doc")
	assert.Contains(t, message, "in this document")
}

func TestStripBoilerplate(t *testing.T) {
	got := stripBoilerplate(leaseDoc().Sections[0].Content)

	assert.NotContains(t, got, "This Commercial Lease Agreement")
	assert.Contains(t, got, "Tenant")
}

func TestStripBoilerplate_KeepsContentWhenEverythingMatches(t *testing.T) {
	content := "This Agreement is between A and B."
	assert.Equal(t, content, stripBoilerplate(content))
}

func TestStripBoilerplate_NormalizesWhitespace(t *testing.T) {
	got := stripBoilerplate("Rent  is   due monthly...")
	assert.Equal(t, "Rent is due monthly", got)
}
