// The adapter exposes the document analysis pipeline as MCP tools over
// stdio, so MCP-aware clients can query the corpus without the HTTP
// gateway.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docsage/docsage/internal/analyzer"
	"github.com/docsage/docsage/internal/config"
	"github.com/docsage/docsage/internal/document"
	"github.com/docsage/docsage/internal/middleware"
)

type analyzeInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document to analyze"`
	Message    string `json:"message" jsonschema:"the question to ask about the document"`
}

type documentInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document id"`
}

type adapter struct {
	store    *document.Store
	pipeline *analyzer.Pipeline
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}
	middleware.SetLogLevel(cfg.Docsage.Log.Level)

	docs, err := loadCorpus(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load corpus")
	}

	logger := log.With().Str("component", "pipeline").Logger()
	a := &adapter{
		store: document.NewStore(docs),
		pipeline: analyzer.New(analyzer.Options{
			MaxCitations:      cfg.Docsage.Pipeline.MaxCitations,
			SummaryThreshold:  cfg.Docsage.Pipeline.SummaryThreshold,
			FollowUpThreshold: cfg.Docsage.Pipeline.FollowUpThreshold,
			Logger:            &logger,
		}),
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docsage",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_document",
		Description: "Ask a question about a legal document and get an answer with citations",
	}, a.analyzeDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the documents available for analysis",
	}, a.listDocuments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "document_structure",
		Description: "Report section and page counts and the document type",
	}, a.documentStructure)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "financial_terms",
		Description: "Extract dollar amounts, payment terms and penalties from a document",
	}, a.financialTerms)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "temporal_terms",
		Description: "Extract durations, deadlines and notice periods from a document",
	}, a.temporalTerms)

	log.Info().Int("documents", a.store.Len()).Msg("Starting docsage MCP adapter on stdio")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("MCP server error")
	}
}

func loadCorpus(cfg *config.Config) ([]document.Document, error) {
	switch cfg.Docsage.Corpus.Backend {
	case "builtin":
		return document.Builtin(), nil
	case "yaml":
		return document.LoadYAML(cfg.Docsage.Corpus.Path)
	case "sqlite":
		return document.LoadSQLite(cfg.Docsage.Corpus.Path)
	}
	return nil, fmt.Errorf("unknown corpus backend: %s", cfg.Docsage.Corpus.Backend)
}

func (a *adapter) analyzeDocument(ctx context.Context, req *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, any, error) {
	if input.Message == "" {
		return errorResult("message is required"), nil, nil
	}
	doc, ok := a.store.Get(input.DocumentID)
	if !ok {
		return errorResult(fmt.Sprintf("document not found: %s", input.DocumentID)), nil, nil
	}
	return jsonResult(a.pipeline.AnswerQuery(doc, input.Message, nil))
}

func (a *adapter) listDocuments(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	type documentInfo struct {
		ID            string `json:"id"`
		Title         string `json:"title"`
		SectionsCount int    `json:"sections_count"`
		Pages         int    `json:"pages"`
	}
	docs := a.store.List()
	infos := make([]documentInfo, len(docs))
	for i, doc := range docs {
		infos[i] = documentInfo{
			ID:            doc.ID,
			Title:         doc.Title,
			SectionsCount: len(doc.Sections),
			Pages:         doc.Pages(),
		}
	}
	return jsonResult(map[string]any{"documents": infos})
}

func (a *adapter) documentStructure(ctx context.Context, req *mcp.CallToolRequest, input documentInput) (*mcp.CallToolResult, any, error) {
	doc, ok := a.store.Get(input.DocumentID)
	if !ok {
		return errorResult(fmt.Sprintf("document not found: %s", input.DocumentID)), nil, nil
	}
	return jsonResult(analyzer.AnalyzeStructure(doc))
}

func (a *adapter) financialTerms(ctx context.Context, req *mcp.CallToolRequest, input documentInput) (*mcp.CallToolResult, any, error) {
	doc, ok := a.store.Get(input.DocumentID)
	if !ok {
		return errorResult(fmt.Sprintf("document not found: %s", input.DocumentID)), nil, nil
	}
	return jsonResult(analyzer.ExtractFinancialTerms(doc))
}

func (a *adapter) temporalTerms(ctx context.Context, req *mcp.CallToolRequest, input documentInput) (*mcp.CallToolResult, any, error) {
	doc, ok := a.store.Get(input.DocumentID)
	if !ok {
		return errorResult(fmt.Sprintf("document not found: %s", input.DocumentID)), nil, nil
	}
	return jsonResult(analyzer.ExtractTemporalTerms(doc))
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(body)},
		},
	}, nil, nil
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}
}
