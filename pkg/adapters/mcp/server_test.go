package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endsInOne = `
initial: 0
final: [1]
white: "_"
transitions:
  - {from: 0, read: "0", to: 0, write: "0", dir: R}
  - {from: 0, read: "1", to: 1, write: "1", dir: R}
`

func newServer(t *testing.T) *Server {
	t.Helper()
	eng, err := turing.New("", turing.WithLoader(memory.NewLoader(endsInOne, schema.FormatYAML)))
	require.NoError(t, err)
	return NewServer(eng, "0.0.0-test", nil)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestServer_EvaluateWord(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	res, err := s.handleEvaluateWord(ctx, mcp.CallToolRequest{}, map[string]any{"word": " 001 "})
	require.NoError(t, err)
	assert.Equal(t, WordResult{Word: "001", Verdict: "Accepted"}, res)

	res, err = s.handleEvaluateWord(ctx, mcp.CallToolRequest{}, map[string]any{"word": ""})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", res.Verdict)

	_, err = s.handleEvaluateWord(ctx, mcp.CallToolRequest{}, map[string]any{"word": 7})
	assert.Error(t, err)
}

func TestServer_EvaluateWords(t *testing.T) {
	s := newServer(t)

	res, err := s.handleEvaluateWords(context.Background(), callRequest("evaluate_words", map[string]any{
		"words": "01\n\n00\n",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "01 - Accepted\n00 - Rejected\n\n2 words: 1 accepted, 1 rejected\n", resultText(t, res))

	res, err = s.handleEvaluateWords(context.Background(), callRequest("evaluate_words", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestServer_DescribeMachine(t *testing.T) {
	res, err := newServer(t).handleDescribeMachine(context.Background(), callRequest("describe_machine", nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "# Machine")
}

func TestServer_ReadMachine(t *testing.T) {
	contents, err := newServer(t).readMachine(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, MachineURI, text.URI)

	var desc schema.Description
	require.NoError(t, json.Unmarshal([]byte(text.Text), &desc))
	assert.Equal(t, []int{1}, desc.Final)
	assert.Equal(t, "_", desc.White)
	assert.Len(t, desc.Transitions, 2)
}
