package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/docsage/docsage/internal/document"
)

// Conversational short-circuits, tested before any scoring happens.
var (
	greetingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(hi|hello|hey|greetings|good morning|good afternoon|good evening)$`),
		regexp.MustCompile(`(?i)^(how are you|how's it going|what's up)$`),
	}
	gratitudePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(thank you|thanks|thx|appreciate it)$`),
	}
	helpPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(what can you help with|what can you do|help|what are you)$`),
	}

	formalPhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)According to Section [\d.]+ on page \d+,\s*`),
		regexp.MustCompile(`(?i)According to the document,\s*`),
		regexp.MustCompile(`(?i)The document states that\s*`),
		regexp.MustCompile(`(?i)It is stated that\s*`),
	}

	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

// prefixRule maps query trigger words to a fixed prefix. Rules are
// evaluated in order and only the first match applies.
type prefixRule struct {
	prefix   string
	triggers []string
}

var toneRules = []prefixRule{
	{"💰 ", []string{"how much", "cost", "payment"}},
	{"⏰ ", []string{"when", "time", "deadline"}},
	{"✅ ", []string{"can i", "allowed", "permitted"}},
	{"🚪 ", []string{"terminate", "end", "cancel"}},
}

var personalityRules = []prefixRule{
	{"You're welcome! ", []string{"thank"}},
	{"Great question! ", []string{"help", "what can you"}},
	{"Let me clarify that for you: ", []string{"confused", "unclear"}},
	{"This is indeed important: ", []string{"important", "critical"}},
}

// followUpRule maps query trigger words to the single follow-up question
// offered with a confident answer.
type followUpRule struct {
	question string
	triggers []string
}

var followUpRules = []followUpRule{
	{"Would you like to know about the payment schedule or late payment penalties?", []string{"payment", "cost", "amount"}},
	{"Would you like to know about the termination process or any penalties for early termination?", []string{"terminate", "end", "cancel"}},
	{"Would you like to know about renewal options or extension terms?", []string{"duration", "term", "length"}},
	{"Would you like to know about restrictions on use or permitted activities?", []string{"use", "purpose", "premises"}},
	{"Would you like to know about utility responsibilities or maintenance obligations?", []string{"utilities", "maintenance"}},
	{"Would you like to know about additional benefits or eligibility requirements?", []string{"benefits", "vacation", "insurance"}},
}

const genericFollowUp = "Is there anything else about this contract you'd like me to explain?"

var confidenceKeywords = []string{
	"payment", "terminate", "duration", "use", "utilities", "maintenance", "benefits",
}

var importantTerms = []string{
	"payment", "terminate", "liability", "confidential", "warrant", "represent",
	"dollars", "days", "months", "years", "shall", "must", "agree",
}

var conversationTopics = []keywordCategory{
	{"payment", []string{"payment", "rent", "salary", "fee", "amount", "dollars"}},
	{"termination", []string{"terminate", "end", "cancel", "notice"}},
	{"duration", []string{"term", "length", "months", "years"}},
	{"use", []string{"use", "purpose", "premises", "office"}},
	{"utilities", []string{"utilities", "electricity", "water", "gas"}},
	{"maintenance", []string{"maintain", "repair", "condition"}},
	{"benefits", []string{"benefits", "vacation", "holidays", "insurance"}},
	{"confidentiality", []string{"confidential", "proprietary", "disclose"}},
	{"noncompete", []string{"compete", "competition", "radius"}},
	{"warranty", []string{"warrant", "represent", "title"}},
}

// Options is the immutable pipeline configuration.
type Options struct {
	// MaxCitations caps how many citations a response displays.
	MaxCitations int
	// SummaryThreshold gates the analysis summary on confidence.
	SummaryThreshold float64
	// FollowUpThreshold is the minimum confidence for a follow-up question.
	FollowUpThreshold float64
	// Logger receives pipeline diagnostics; defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Pipeline answers free-text questions about a document. A Pipeline holds
// no per-request state and is safe for concurrent use.
type Pipeline struct {
	opts  Options
	cache *CitationCache
	log   zerolog.Logger
}

// New builds a Pipeline, applying defaults for unset options.
func New(opts Options) *Pipeline {
	if opts.MaxCitations <= 0 {
		opts.MaxCitations = maxDisplayCitations
	}
	if opts.SummaryThreshold == 0 {
		opts.SummaryThreshold = 0.7
	}
	if opts.FollowUpThreshold == 0 {
		opts.FollowUpThreshold = 0.5
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Pipeline{opts: opts, cache: NewCitationCache(), log: logger}
}

// Cache exposes the per-document citation cache.
func (p *Pipeline) Cache() *CitationCache {
	return p.cache
}

// AnswerQuery runs the full pipeline for one query. It always returns a
// well-formed Response: any panic during composition is recovered and
// converted into the fixed low-confidence apology.
func (p *Pipeline) AnswerQuery(doc document.Document, query string, history []Message) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Str("document", doc.ID).Interface("panic", r).Msg("composition failed, returning apology response")
			resp = errorResponse()
		}
	}()

	raw, isQuestion := p.respond(query, doc)
	return p.compose(raw, query, doc, history, isQuestion)
}

// respond classifies the message and produces the raw answer. The second
// return value reports whether the scoring pipeline ran (false for the
// greeting, gratitude and help short-circuits).
func (p *Pipeline) respond(query string, doc document.Document) (rawResponse, bool) {
	message := strings.TrimSpace(query)

	switch {
	case matchesAny(message, greetingPatterns):
		return p.greetingResponse(doc), false
	case matchesAny(message, gratitudePatterns):
		return p.gratitudeResponse(), false
	case matchesAny(message, helpPatterns):
		return p.helpResponse(doc), false
	}
	return p.documentResponse(query, doc), true
}

func (p *Pipeline) greetingResponse(doc document.Document) rawResponse {
	return rawResponse{
		response: fmt.Sprintf("👋 Hi there! I'm here to help you understand your %s. You can ask me about any terms, clauses, or details in the document. What would you like to know?",
			document.FriendlyName(doc.ID)),
		citations:  []Citation{overviewCitation(doc, "Document Introduction")},
		confidence: 1.0,
	}
}

func (p *Pipeline) gratitudeResponse() rawResponse {
	return rawResponse{
		response:   "You're very welcome! I'm here to help you understand your legal documents. Is there anything specific about the contract you'd like me to explain?",
		confidence: 1.0,
	}
}

func (p *Pipeline) helpResponse(doc document.Document) rawResponse {
	response := fmt.Sprintf(`I can help you analyze your %s in several ways:

🔍 **Ask specific questions** about terms, clauses, or sections
💰 **Get payment information** like amounts, due dates, and methods
⏰ **Understand timelines** for termination, renewal, or deadlines
⚠️ **Identify risks** and potential issues in the contract
📋 **Review compliance** with legal requirements
📄 **Get explanations** of complex legal language

Try asking something like:
• "What are the payment terms?"
• "How can I terminate this contract?"
• "What are the key risks in this agreement?"
• "Explain the non-compete clause"`, document.FriendlyName(doc.ID))

	return rawResponse{
		response:   response,
		citations:  []Citation{overviewCitation(doc, "Document Overview")},
		confidence: 1.0,
	}
}

func (p *Pipeline) documentResponse(query string, doc document.Document) rawResponse {
	scored := ScoreSections(query, doc)
	if len(scored) == 0 {
		return rawResponse{
			response:   NoAnswerMessage(query, doc.ID),
			citations:  []Citation{overviewCitation(doc, "Document Overview")},
			confidence: 0.2,
		}
	}

	return rawResponse{
		response:   Synthesize(query, scored, doc.ID),
		citations:  FormatCitations(scored, doc.ID),
		confidence: calculateConfidence(scored, query),
	}
}

// overviewCitation points at the document's opening section. The label is
// fixed at 1.1 so every short-circuit reply anchors on the introduction.
func overviewCitation(doc document.Document, display string) Citation {
	content := ""
	if len(doc.Sections) > 0 {
		content = doc.Sections[0].Content
	}
	return Citation{
		DocumentID: doc.ID,
		Section:    "1.1",
		Page:       1,
		Text:       content,
		Display:    display,
		Reference:  "Section 1.1",
		FullText:   content,
	}
}

// compose turns the raw answer into the final Response: conversational
// tone, key points, capped citations, follow-up and the confidence-gated
// analysis summary.
func (p *Pipeline) compose(raw rawResponse, query string, doc document.Document, history []Message, isQuestion bool) Response {
	message := makeConversational(raw.response, query)
	if isQuestion {
		if topics := extractTopics(history); len(topics) > 0 {
			message = fmt.Sprintf("Building on our previous discussion about %s, %s", strings.Join(topics, ", "), message)
		}
	}

	selected := SelectTopCitations(raw.citations, p.opts.MaxCitations)
	processed := ProcessCitations(selected, doc)
	p.cache.Set(doc.ID, processed)

	followUps := []string{}
	if q := p.followUp(query, raw.confidence); q != "" {
		followUps = append(followUps, q)
	}

	resp := Response{
		Response:          message,
		KeyPoints:         extractKeyPoints(raw.response),
		Citations:         processed,
		Confidence:        raw.confidence,
		FollowUpQuestions: followUps,
		ShowMoreCitations: len(raw.citations) > p.opts.MaxCitations,
	}

	if raw.confidence > p.opts.SummaryThreshold {
		summary := Summarize(doc, processed)
		resp.AnalysisSummary = &summary
	}
	return resp
}

// makeConversational strips formal phrasing and applies at most one tone
// prefix and one personality prefix, both picked by query intent.
func makeConversational(response, query string) string {
	conversational := response
	for _, re := range formalPhrases {
		conversational = re.ReplaceAllString(conversational, "")
	}

	lowerQuery := strings.ToLower(query)
	for _, rule := range toneRules {
		if containsAny(lowerQuery, rule.triggers...) {
			conversational = rule.prefix + conversational
			break
		}
	}
	for _, rule := range personalityRules {
		if containsAny(lowerQuery, rule.triggers...) {
			conversational = rule.prefix + conversational
			break
		}
	}
	return conversational
}

// extractKeyPoints pulls up to three sentences that carry important legal
// vocabulary. When nothing qualifies it falls back to a truncated lead.
func extractKeyPoints(response string) []string {
	var keyPoints []string
	for _, sentence := range sentenceSplitRe.Split(response, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 {
			continue
		}
		if containsAny(strings.ToLower(sentence), importantTerms...) {
			keyPoints = append(keyPoints, sentence)
		}
		if len(keyPoints) >= 3 {
			break
		}
	}
	if len(keyPoints) == 0 {
		return []string{truncate(response, 100) + "..."}
	}
	return keyPoints
}

// followUp picks the single follow-up question for a confident answer.
// Low-confidence answers get none.
func (p *Pipeline) followUp(query string, confidence float64) string {
	if confidence < p.opts.FollowUpThreshold {
		return ""
	}
	lowerQuery := strings.ToLower(query)
	for _, rule := range followUpRules {
		if containsAny(lowerQuery, rule.triggers...) {
			return rule.question
		}
	}
	return genericFollowUp
}

// calculateConfidence scores how well the matched sections support the
// answer: 0.5 base, 0.1 per topical keyword in the query, 0.1 per
// matched section (capped at 0.3), ceiling 0.95.
func calculateConfidence(sections []ScoredSection, query string) float64 {
	if len(sections) == 0 {
		return 0.1
	}

	confidence := 0.5
	lowerQuery := strings.ToLower(query)
	for _, keyword := range confidenceKeywords {
		if strings.Contains(lowerQuery, keyword) {
			confidence += 0.1
		}
	}

	sectionBonus := float64(len(sections)) * 0.1
	if sectionBonus > 0.3 {
		sectionBonus = 0.3
	}
	confidence += sectionBonus

	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

// extractTopics lists up to three topics discussed in the conversation
// history. Topics only shape phrasing; they never influence scoring.
func extractTopics(history []Message) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, message := range history {
		lowerContent := strings.ToLower(message.Content)
		for _, topic := range conversationTopics {
			if seen[topic.name] {
				continue
			}
			if containsAny(lowerContent, topic.keywords...) {
				topics = append(topics, topic.name)
				seen[topic.name] = true
			}
		}
	}
	if len(topics) > 3 {
		topics = topics[:3]
	}
	return topics
}

// errorResponse is the fixed apology returned when composition fails.
func errorResponse() Response {
	return Response{
		Response: "I apologize, but I'm having trouble processing your request right now. Please try rephrasing your question or ask about a different aspect of the document.",
		KeyPoints: []string{
			"Try rephrasing your question",
			"Ask about specific terms or clauses",
			"Check your document selection",
		},
		Citations:         []ProcessedCitation{},
		Confidence:        0.1,
		FollowUpQuestions: []string{},
	}
}

func matchesAny(message string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}
