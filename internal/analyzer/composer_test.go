package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerQuery_RentQuestion(t *testing.T) {
	p := New(Options{})
	resp := p.AnswerQuery(leaseDoc(), "What's the monthly rent?", nil)

	assert.True(t, strings.HasPrefix(resp.Response, "Based on the contract, "), resp.Response)
	assert.Contains(t, resp.Response, "$8,500.00")
	assert.InDelta(t, 0.8, resp.Confidence, 1e-9)

	require.Len(t, resp.Citations, 2)
	assert.Equal(t, "5.1", resp.Citations[0].SectionID)
	assert.Equal(t, "2.1", resp.Citations[1].SectionID)
	assert.True(t, resp.ShowMoreCitations)

	require.NotNil(t, resp.AnalysisSummary)
	assert.Equal(t, 70, resp.AnalysisSummary.ComplianceScore)
	assert.Contains(t, resp.AnalysisSummary.KeyPoints, "Payment amount: $8,500.00")

	assert.NotEmpty(t, resp.KeyPoints)
	require.Len(t, resp.FollowUpQuestions, 1)
	assert.Equal(t, "Is there anything else about this contract you'd like me to explain?", resp.FollowUpQuestions[0])
}

func TestAnswerQuery_PaymentFollowUp(t *testing.T) {
	p := New(Options{})
	resp := p.AnswerQuery(leaseDoc(), "How much is the payment?", nil)

	assert.True(t, strings.HasPrefix(resp.Response, "💰 "), resp.Response)
	require.Len(t, resp.FollowUpQuestions, 1)
	assert.Equal(t, "Would you like to know about the payment schedule or late payment penalties?", resp.FollowUpQuestions[0])
}

func TestAnswerQuery_NoMatch(t *testing.T) {
	p := New(Options{})
	resp := p.AnswerQuery(leaseDoc(), "xyzzy plugh qqq", nil)

	assert.Contains(t, resp.Response, "I don't see specific information")
	assert.Contains(t, resp.Response, "lease agreement")
	assert.InDelta(t, 0.2, resp.Confidence, 1e-9)
	assert.Empty(t, resp.FollowUpQuestions)
	assert.Nil(t, resp.AnalysisSummary)
	assert.False(t, resp.ShowMoreCitations)

	// The no-answer reply still anchors on the document introduction.
	require.Len(t, resp.Citations, 1)
	assert.Equal(t, "1.1", resp.Citations[0].SectionID)
}

func TestAnswerQuery_Greeting(t *testing.T) {
	p := New(Options{})
	resp := p.AnswerQuery(leaseDoc(), "hello", nil)

	assert.True(t, strings.HasPrefix(resp.Response, "👋 Hi there!"), resp.Response)
	assert.Contains(t, resp.Response, "lease agreement")
	assert.InDelta(t, 1.0, resp.Confidence, 1e-9)

	require.Len(t, resp.Citations, 1)
	assert.Equal(t, "Introduction and Parties - Commercial Lease Agreement", resp.Citations[0].Title)
}

func TestAnswerQuery_Gratitude(t *testing.T) {
	p := New(Options{})
	resp := p.AnswerQuery(leaseDoc(), "thanks", nil)

	assert.True(t, strings.HasPrefix(resp.Response, "You're welcome! You're very welcome!"), resp.Response)
	assert.InDelta(t, 1.0, resp.Confidence, 1e-9)
	assert.Empty(t, resp.Citations)
}

func TestAnswerQuery_Help(t *testing.T) {
	p := New(Options{})
	resp := p.AnswerQuery(leaseDoc(), "what can you do", nil)

	assert.Contains(t, resp.Response, "Ask specific questions")
	assert.InDelta(t, 1.0, resp.Confidence, 1e-9)
}

func TestAnswerQuery_HistoryTopics(t *testing.T) {
	p := New(Options{})
	history := []Message{{Role: "user", Content: "How much is the rent payment?"}}

	resp := p.AnswerQuery(leaseDoc(), "What about termination?", history)

	assert.True(t, strings.HasPrefix(resp.Response, "Building on our previous discussion about payment, "), resp.Response)
}

func TestAnswerQuery_HistoryIgnoredForGreetings(t *testing.T) {
	p := New(Options{})
	history := []Message{{Role: "user", Content: "How much is the rent payment?"}}

	resp := p.AnswerQuery(leaseDoc(), "hello", history)

	assert.NotContains(t, resp.Response, "Building on our previous discussion")
}

func TestAnswerQuery_CachesCitations(t *testing.T) {
	p := New(Options{})
	p.AnswerQuery(leaseDoc(), "What's the monthly rent?", nil)

	cached, ok := p.Cache().Get("lease-agreement")
	require.True(t, ok)
	assert.Len(t, cached, 2)
}

func TestAnswerQuery_Deterministic(t *testing.T) {
	p := New(Options{})
	first := p.AnswerQuery(leaseDoc(), "What are the payment terms?", nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.AnswerQuery(leaseDoc(), "What are the payment terms?", nil))
	}
}

func TestMakeConversational(t *testing.T) {
	got := makeConversational("According to the document, the rent is $500.", "How much is the rent?")
	assert.Equal(t, "💰 the rent is $500.", got)

	got = makeConversational("The document states that notice is required.", "Can I sublet?")
	assert.Equal(t, "✅ notice is required.", got)

	got = makeConversational("Thanks for asking.", "thank you for the help")
	assert.True(t, strings.HasPrefix(got, "You're welcome! "), got)
}

func TestMakeConversational_OnePrefixPerKind(t *testing.T) {
	// "payment" and "when" both match tone rules; only the first fires.
	got := makeConversational("Answer.", "when is the payment due")
	assert.True(t, strings.HasPrefix(got, "💰 "), got)
	assert.NotContains(t, got, "⏰")
}

func TestExtractKeyPoints(t *testing.T) {
	response := "The tenant shall pay rent monthly without fail. Short one. The agreement may terminate with ninety days notice to the landlord."
	points := extractKeyPoints(response)

	require.Len(t, points, 2)
	assert.Contains(t, points[0], "shall pay rent")
	assert.Contains(t, points[1], "terminate")
}

func TestExtractKeyPoints_Fallback(t *testing.T) {
	points := extractKeyPoints("Nothing of note in this reply whatsoever, just filler text")

	require.Len(t, points, 1)
	assert.True(t, strings.HasSuffix(points[0], "..."))
}

func TestCalculateConfidence(t *testing.T) {
	assert.InDelta(t, 0.1, calculateConfidence(nil, "anything"), 1e-9)

	sections := []ScoredSection{scoredSection("2.1", 2, "rent"), scoredSection("2.2", 2, "rent")}
	assert.InDelta(t, 0.9, calculateConfidence(sections, "payment and terminate options"), 1e-9)

	three := append(sections, scoredSection("5.1", 5, "rent"))
	got := calculateConfidence(three, "payment terminate duration use utilities maintenance benefits")
	assert.InDelta(t, 0.95, got, 1e-9)
}

func TestExtractTopics(t *testing.T) {
	history := []Message{
		{Role: "user", Content: "What is the rent?"},
		{Role: "assistant", Content: "The rent is $8,500."},
		{Role: "user", Content: "How do I terminate? What about utilities and insurance and repairs?"},
	}

	topics := extractTopics(history)

	// "term" is a substring of "terminate", so duration fires too and
	// the cap drops utilities.
	require.Len(t, topics, 3)
	assert.Equal(t, []string{"payment", "termination", "duration"}, topics)
}

func TestExtractTopics_Empty(t *testing.T) {
	assert.Empty(t, extractTopics(nil))
	assert.Empty(t, extractTopics([]Message{{Role: "user", Content: "hello there"}}))
}

func TestFollowUp_BelowThreshold(t *testing.T) {
	p := New(Options{})
	assert.Equal(t, "", p.followUp("payment question", 0.3))
	assert.NotEqual(t, "", p.followUp("payment question", 0.8))
}

func TestErrorResponse(t *testing.T) {
	resp := errorResponse()

	assert.Contains(t, resp.Response, "I apologize")
	assert.InDelta(t, 0.1, resp.Confidence, 1e-9)
	assert.Equal(t, []string{
		"Try rephrasing your question",
		"Ask about specific terms or clauses",
		"Check your document selection",
	}, resp.KeyPoints)
	assert.Empty(t, resp.Citations)
}

func TestNewDefaults(t *testing.T) {
	p := New(Options{})

	assert.Equal(t, 2, p.opts.MaxCitations)
	assert.InDelta(t, 0.7, p.opts.SummaryThreshold, 1e-9)
	assert.InDelta(t, 0.5, p.opts.FollowUpThreshold, 1e-9)
	assert.NotNil(t, p.cache)
}
