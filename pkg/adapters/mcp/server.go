package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MachineURI names the machine description resource.
const MachineURI = "turing://machine"

// WordResult is the structured output of evaluate_word.
type WordResult struct {
	Word    string `json:"word" jsonschema_description:"The sanitized word that was simulated"`
	Verdict string `json:"verdict" jsonschema_description:"Accepted or Rejected"`
}

// Server wraps an Evaluator and exposes it as an MCP Server.
type Server struct {
	eval      ports.Evaluator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(eval ports.Evaluator, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		eval:      eval,
		logger:    logger,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: evaluate_word
	evaluateTool := mcp.NewTool("evaluate_word",
		mcp.WithDescription("Simulate the machine on one word and return whether it is accepted."),
		mcp.WithString("word", mcp.Required(), mcp.Description("Input word; may be empty")),
		mcp.WithOutputSchema[WordResult](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluateWord))

	// TOOL: evaluate_words
	s.mcpServer.AddTool(mcp.NewTool("evaluate_words",
		mcp.WithDescription("Simulate the machine on several words, one per line, and return 'word - Verdict' lines."),
		mcp.WithString("words", mcp.Required(), mcp.Description("Newline-separated words; blank lines are skipped")),
	), s.handleEvaluateWords)

	// TOOL: describe_machine
	s.mcpServer.AddTool(mcp.NewTool("describe_machine",
		mcp.WithDescription("Summarize the machine: initial state, final states, blank symbol and rules."),
	), s.handleDescribeMachine)
}

func (s *Server) handleEvaluateWord(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WordResult, error) {
	raw, ok := args["word"].(string)
	if !ok {
		return WordResult{}, fmt.Errorf("word must be a string")
	}

	word, err := runner.SanitizeWord(raw)
	if err != nil {
		s.logger.Warn("MCP evaluate_word: word rejected", "err", err, "size", len(raw))
		return WordResult{}, fmt.Errorf("word rejected: %w", err)
	}

	verdict, err := s.eval.Evaluate(ctx, word)
	if err != nil {
		return WordResult{}, fmt.Errorf("evaluate failed: %w", err)
	}
	return WordResult{Word: word, Verdict: verdict.String()}, nil
}

func (s *Server) handleEvaluateWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("words")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out strings.Builder
	summary, err := runner.NewRunner(runner.WithLogger(s.logger)).Run(ctx, s.eval, strings.NewReader(input), &out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluate failed: %v", err)), nil
	}
	fmt.Fprintf(&out, "\n%d words: %d accepted, %d rejected\n", summary.Total, summary.Accepted, summary.Rejected)
	return mcp.NewToolResultText(out.String()), nil
}

func (s *Server) handleDescribeMachine(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(tui.DescribeMarkdown("Machine", s.eval.Table())), nil
}

func (s *Server) registerResources() {
	// EXPOSE: turing://machine
	s.mcpServer.AddResource(mcp.NewResource(MachineURI, "Machine Description",
		mcp.WithMIMEType("application/json"),
	), s.readMachine)
}

func (s *Server) readMachine(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(schema.FromTable(s.eval.Table()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode machine: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      MachineURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
