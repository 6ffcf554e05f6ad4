package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test_item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
			"required":             []string{"name"},
			"additionalProperties": false,
		},
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `  {"a":1} `, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with prose", "Here you go:\n```json\n{\"a\": [1, 2]}\n```\nThanks.", `{"a": [1, 2]}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Result: {"a":{"b":2}} done`, `{"a":{"b":2}}`},
		{"garbage", `nothing here`, `nothing here`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(ExtractJSON([]byte(tt.in))); got != tt.want {
				t.Fatalf("ExtractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateResponse(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(`{"name":"ok"}`)); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Fatalf("nil schema should accept anything: %v", err)
	}

	for _, doc := range []string{`{"name":3}`, `{}`, `{"name":"x","extra":1}`, `[`} {
		err := validateResponse(testSchema(), json.RawMessage(doc))
		var invalid *ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected ErrInvalidResponse, got %v", doc, err)
		}
	}
}

func TestMock_Truncated(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"name":`), StopReason: "max_tokens"})
	_, err := mock.Generate(context.Background(), Request{Schema: testSchema()})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
}

func TestMock_FencedOutputValidated(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("```json\n{\"name\":\"brand\"}\n```")})
	resp, err := mock.Generate(context.Background(), UserPrompt("sys", "hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"name":"brand"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.Calls[0].System != "sys" || mock.Calls[0].Messages[0].Content != "hi" {
		t.Fatalf("request not recorded: %+v", mock.Calls[0])
	}

	if _, err := mock.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty queue")
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(testSchema().Definition)
	if s.Properties["name"] == nil {
		t.Fatal("missing property")
	}
	if len(s.Required) != 1 || s.Required[0] != "name" {
		t.Fatalf("unexpected required: %v", s.Required)
	}
}
