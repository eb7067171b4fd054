// Package analyzer implements the document question-answering pipeline:
// section relevance scoring, answer synthesis, citation formatting and a
// response composer that wraps everything in a conversational reply.
//
// The whole pipeline is deterministic and side-effect free: identical
// inputs always produce identical output, and a single Pipeline value may
// be shared by any number of concurrent requests.
package analyzer

import "github.com/docsage/docsage/internal/document"

// Message is one prior conversation turn supplied by the caller.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ScoredSection pairs a document section with its relevance score for a
// single query. It only lives for the duration of one scoring pass.
type ScoredSection struct {
	Section document.Section
	Score   int
}

// Citation is a raw pointer from an answer back into the document,
// produced by the synthesis stage before display processing.
type Citation struct {
	DocumentID string `json:"documentId"`
	Section    string `json:"section"`
	Page       int    `json:"page"`
	Text       string `json:"text,omitempty"`
	Display    string `json:"display,omitempty"`
	Reference  string `json:"reference,omitempty"`
	FullText   string `json:"fullText,omitempty"`
}

// ProcessedCitation is the display-ready form of a Citation, carrying a
// clamped relevance score and a generated title.
type ProcessedCitation struct {
	SectionID      string  `json:"section_id"`
	Page           int     `json:"page"`
	Title          string  `json:"title"`
	RelevanceScore float64 `json:"relevance_score"`
	Text           string  `json:"text,omitempty"`
	Display        string  `json:"display,omitempty"`
	Reference      string  `json:"reference,omitempty"`
	FullText       string  `json:"fullText,omitempty"`
}

// AnalysisSummary bundles document-wide findings. It is only attached to
// responses whose confidence clears the summary threshold.
type AnalysisSummary struct {
	KeyPoints       []string `json:"key_points"`
	RisksIdentified []string `json:"risks_identified"`
	ComplianceScore int      `json:"compliance_score"`
}

// Response is the final answer object returned to the transport layer.
type Response struct {
	Response          string              `json:"response"`
	KeyPoints         []string            `json:"key_points"`
	Citations         []ProcessedCitation `json:"citations"`
	Confidence        float64             `json:"confidence"`
	FollowUpQuestions []string            `json:"follow_up_questions"`
	ShowMoreCitations bool                `json:"show_more_citations"`
	AnalysisSummary   *AnalysisSummary    `json:"analysis_summary,omitempty"`
}

// rawResponse is the intermediate answer before conversational formatting.
type rawResponse struct {
	response   string
	citations  []Citation
	confidence float64
}

// DocumentStructure describes the shape of a document.
type DocumentStructure struct {
	TotalSections int      `json:"total_sections"`
	TotalPages    int      `json:"total_pages"`
	KeySections   []string `json:"key_sections"`
	DocumentType  string   `json:"document_type"`
}

// FinancialTerms collects money-related phrases found in a document.
type FinancialTerms struct {
	Amounts      []string `json:"amounts"`
	PaymentTerms []string `json:"payment_terms"`
	Penalties    []string `json:"penalties"`
}

// TemporalTerms collects time-related phrases found in a document.
type TemporalTerms struct {
	Durations     []string `json:"durations"`
	Deadlines     []string `json:"deadlines"`
	NoticePeriods []string `json:"notice_periods"`
}
