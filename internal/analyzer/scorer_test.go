package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/document"
)

func leaseDoc() document.Document {
	return document.Builtin()[0]
}

func employmentDoc() document.Document {
	return document.Builtin()[1]
}

func TestScoreSections_RentQuery(t *testing.T) {
	scored := ScoreSections("What's the monthly rent?", leaseDoc())

	require.Len(t, scored, 3)
	assert.Equal(t, "2.1", scored[0].Section.Section)
	assert.Equal(t, "2.2", scored[1].Section.Section)
	assert.Equal(t, "5.1", scored[2].Section.Section)

	// "rent" appears in the query and all three sections, plus the
	// semantic payment match.
	for _, s := range scored {
		assert.Equal(t, 3, s.Score)
	}
}

func TestScoreSections_NoMatch(t *testing.T) {
	scored := ScoreSections("xyzzy plugh qqq", leaseDoc())
	assert.Empty(t, scored)
}

func TestScoreSections_EmptyQuery(t *testing.T) {
	assert.Empty(t, ScoreSections("", leaseDoc()))
	assert.Empty(t, ScoreSections("   ", leaseDoc()))
}

func TestScoreSections_CapsAtThree(t *testing.T) {
	scored := ScoreSections("payment rent termination utilities maintenance", leaseDoc())

	require.Len(t, scored, 3)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestScoreSections_ContentMatchOutranksQueryOnly(t *testing.T) {
	scored := ScoreSections("How many vacation days do I get?", employmentDoc())

	require.NotEmpty(t, scored)
	// 4.1 carries both "vacation" and "days" so it must rank first.
	assert.Equal(t, "4.1", scored[0].Section.Section)
}

func TestScoreSections_Deterministic(t *testing.T) {
	first := ScoreSections("What are the payment terms?", leaseDoc())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ScoreSections("What are the payment terms?", leaseDoc()))
	}
}

func TestSemanticMatches(t *testing.T) {
	assert.Equal(t, 1, semanticMatches("what is the rent", "monthly rent is due"))
	assert.Equal(t, 0, semanticMatches("what is the rent", "no relevant content"))
	assert.Equal(t, 2, semanticMatches("rent and notice", "rent is due after notice"))
}
