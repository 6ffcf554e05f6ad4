package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
)

// newEmptyServer creates a Server without stored-report access.
func newEmptyServer() *Server {
	return NewServer(diagnosis.NewEngine(), WithVersion("test"))
}

// call dispatches one request line and decodes the response. It fails the
// test when no response is produced.
func call(t *testing.T, s *Server, line string) response {
	t.Helper()
	resp := s.dispatch(context.Background(), []byte(line))
	if resp == nil {
		t.Fatalf("no response for %s", line)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var out response
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return out
}

func TestDispatch_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		code int
	}{
		{"malformed json", `{"jsonrpc":`, codeParseError},
		{"wrong version", `{"jsonrpc":"1.0","id":1,"method":"ping"}`, codeInvalidRequest},
		{"missing method", `{"jsonrpc":"2.0","id":1}`, codeInvalidRequest},
		{"unknown method", `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`, codeMethodNotFound},
		{"bad call params", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":[1]}`, codeInvalidParams},
		{"call without name", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{}}`, codeInvalidParams},
	}
	s := newEmptyServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, s, tt.line)
			if resp.Error == nil {
				t.Fatalf("expected error, got result %v", resp.Result)
			}
			if resp.Error.Code != tt.code {
				t.Errorf("code = %d, want %d", resp.Error.Code, tt.code)
			}
		})
	}
}

func TestDispatch_NoResponse(t *testing.T) {
	s := newEmptyServer()
	for _, line := range []string{"", "   ", `{"jsonrpc":"2.0","method":"notifications/initialized"}`} {
		if resp := s.dispatch(context.Background(), []byte(line)); resp != nil {
			t.Errorf("%q: expected no response, got %+v", line, resp)
		}
	}
}

func TestDispatch_Initialize(t *testing.T) {
	resp := call(t, newEmptyServer(), `{"jsonrpc":"2.0","id":"init","method":"initialize"}`)
	if string(*resp.ID) != `"init"` {
		t.Errorf("id not echoed: %s", *resp.ID)
	}
	result := resp.Result.(map[string]any)
	if result["protocolVersion"] != protocolVersion {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	info := result["serverInfo"].(map[string]any)
	if info["name"] != "brandcheck" || info["version"] != "test" {
		t.Errorf("serverInfo = %v", info)
	}
}

func TestDispatch_Ping(t *testing.T) {
	resp := call(t, newEmptyServer(), `{"jsonrpc":"2.0","id":4,"method":"ping"}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
}

func TestDispatch_ToolsList(t *testing.T) {
	s := newEmptyServer()
	s.registerTool(toolDef{
		Name:        "echo",
		Description: "Echo the arguments",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler: func(_ context.Context, args json.RawMessage) (any, error) {
			return args, nil
		},
	})
	// Re-registering replaces instead of duplicating.
	s.registerTool(toolDef{Name: "echo", Description: "Echo", InputSchema: noArgsSchema})

	resp := call(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	tools := resp.Result.(map[string]any)["tools"].([]any)
	var names []string
	for _, tool := range tools {
		m := tool.(map[string]any)
		names = append(names, m["name"].(string))
		if _, ok := m["inputSchema"]; !ok {
			t.Errorf("tool %v has no inputSchema", m["name"])
		}
	}
	if got := strings.Join(names, ","); got != "analyze_scores,list_questions,echo" {
		t.Errorf("tools = %s", got)
	}
}

func TestDispatch_ToolsCall(t *testing.T) {
	s := newEmptyServer()

	tests := []struct {
		name    string
		params  string
		isError bool
		want    string
	}{
		{"analyze", `{"name":"analyze_scores","arguments":{"scores":[1,1,1,1,1,1,1,1,1,1,1,1]}}`, false, `"overallRating":"urgent"`},
		{"null arguments", `{"name":"list_questions","arguments":null}`, false, `"statement"`},
		{"invalid scores", `{"name":"analyze_scores","arguments":{"scores":[1,2]}}`, true, "12"},
		{"unknown tool", `{"name":"nope"}`, true, "unknown tool: nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, s, `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":`+tt.params+`}`)
			if resp.Error != nil {
				t.Fatalf("unexpected rpc error: %v", resp.Error)
			}
			data, _ := json.Marshal(resp.Result)
			var res toolResult
			if err := json.Unmarshal(data, &res); err != nil {
				t.Fatalf("decode result: %v", err)
			}
			if res.IsError != tt.isError {
				t.Errorf("isError = %v, want %v (%s)", res.IsError, tt.isError, res.Content[0].Text)
			}
			if !strings.Contains(res.Content[0].Text, tt.want) {
				t.Errorf("content %q does not contain %q", res.Content[0].Text, tt.want)
			}
		})
	}
}

func TestRun_RespondsPerLine(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := newEmptyServer().Run(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 responses, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], `"id":2`) {
		t.Errorf("second response = %s", lines[1])
	}
}

func TestRun_LargeRequest(t *testing.T) {
	memo := strings.Repeat("認知度", 40000)
	line := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"analyze_scores","arguments":{"scores":[3,3,3,3,3,3,3,3,3,3,3,3],"memo":"` + memo + `"}}}`

	var out bytes.Buffer
	if err := newEmptyServer().Run(context.Background(), strings.NewReader(line+"\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), `"isError":false`) {
		t.Errorf("unexpected response: %.200s", out.String())
	}
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	done := make(chan error, 1)
	go func() { done <- newEmptyServer().Run(ctx, pr, io.Discard) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Run did not return after cancel")
	}
}
