package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/huvdesign/brandcheck/internal/diagnosis"
	"github.com/huvdesign/brandcheck/internal/logger"
	"github.com/huvdesign/brandcheck/internal/store"
	"github.com/huvdesign/brandcheck/internal/survey"
)

// Reports is the stored-submission access the report tools need.
type Reports interface {
	Report(id string) (*survey.Resolved, error)
	List(f survey.ListFilter) ([]*store.Submission, error)
}

type toolHandler func(ctx context.Context, args json.RawMessage) (any, error)

type toolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Handler     toolHandler     `json:"-"`
}

type methodFunc func(ctx context.Context, params json.RawMessage) (any, *rpcError)

// Server is an MCP server speaking line-delimited JSON-RPC 2.0.
type Server struct {
	engine  *diagnosis.Engine
	reports Reports
	log     *logger.Logger
	version string

	tools   []toolDef
	index   map[string]int
	methods map[string]methodFunc
}

// Option configures a Server.
type Option func(*Server)

// WithReports enables the tools that read stored submissions.
func WithReports(r Reports) Option { return func(s *Server) { s.reports = r } }

// WithLogger sets the logger. Logs must not go to the protocol stream.
func WithLogger(l *logger.Logger) Option { return func(s *Server) { s.log = l } }

// WithVersion sets the version reported by initialize.
func WithVersion(v string) Option { return func(s *Server) { s.version = v } }

// NewServer constructs a Server around engine. Without WithReports only the
// stateless tools are registered.
func NewServer(engine *diagnosis.Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		log:     logger.Discard(),
		version: "dev",
		index:   make(map[string]int),
	}
	for _, o := range opts {
		o(s)
	}
	s.methods = map[string]methodFunc{
		"initialize": s.initialize,
		"ping":       s.ping,
		"tools/list": s.listTools,
		"tools/call": s.callTool,
	}
	addTools(s)
	return s
}

// registerTool adds def, replacing a tool of the same name.
func (s *Server) registerTool(def toolDef) {
	if i, ok := s.index[def.Name]; ok {
		s.tools[i] = def
		return
	}
	s.index[def.Name] = len(s.tools)
	s.tools = append(s.tools, def)
}

func (s *Server) tool(name string) (toolDef, bool) {
	i, ok := s.index[name]
	if !ok {
		return toolDef{}, false
	}
	return s.tools[i], true
}

// Run serves requests from r and writes responses to w until ctx is done or r
// reaches EOF. Both end the session cleanly; only I/O failures are returned.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := lineReader(r)
		for sc.Scan() {
			line := bytes.Clone(sc.Bytes())
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			resp := s.dispatch(ctx, line)
			if resp == nil {
				continue
			}
			if err := writeMessage(bw, resp); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
		}
	}
}

// dispatch handles one request line. It returns nil for blank lines and
// notifications, which get no response.
func (s *Server) dispatch(ctx context.Context, line []byte) *response {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		return newResponse(nil, nil, &rpcError{Code: codeParseError, Message: "Parse error"})
	}
	if req.ID == nil {
		s.log.Tracef("mcp notification %s", req.Method)
		return nil
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		return newResponse(req.ID, nil, &rpcError{Code: codeInvalidRequest, Message: "Invalid request"})
	}

	method, ok := s.methods[req.Method]
	if !ok {
		return newResponse(req.ID, nil, &rpcError{Code: codeMethodNotFound, Message: "Method not found"})
	}
	result, rerr := method(ctx, req.Params)
	return newResponse(req.ID, result, rerr)
}

func (s *Server) initialize(context.Context, json.RawMessage) (any, *rpcError) {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]any{"name": "brandcheck", "version": s.version},
	}, nil
}

func (s *Server) ping(context.Context, json.RawMessage) (any, *rpcError) {
	return map[string]any{}, nil
}

func (s *Server) listTools(context.Context, json.RawMessage) (any, *rpcError) {
	return map[string]any{"tools": s.tools}, nil
}

func (s *Server) callTool(ctx context.Context, raw json.RawMessage) (any, *rpcError) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments,omitempty"`
	}
	if err := json.Unmarshal(raw, &params); err != nil || params.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "Invalid params"}
	}

	def, ok := s.tool(params.Name)
	if !ok {
		return textResult("unknown tool: "+params.Name, true), nil
	}
	args := params.Arguments
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage(`{}`)
	}

	start := time.Now()
	out, err := def.Handler(ctx, args)
	if err != nil {
		s.log.Warnf("mcp tool %s: %v", def.Name, err)
		return textResult(err.Error(), true), nil
	}
	data, err := json.Marshal(out)
	if err != nil {
		return textResult(fmt.Sprintf("encoding %s result: %v", def.Name, err), true), nil
	}
	s.log.Debugf("mcp tool %s (%s)", def.Name, time.Since(start).Round(time.Millisecond))
	return textResult(string(data), false), nil
}
