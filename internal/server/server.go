// Package server hosts the tool registry over the Model Context Protocol.
//
// It adapts ToolDefinitions onto the mcp-go server, serves the streamable
// HTTP transport under /mcp, and applies the hosting-layer policy the tools
// themselves stay ignorant of: CORS for the ChatGPT origins, rate limiting,
// and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/taskpilot/taskpilot/internal/config"
	"github.com/taskpilot/taskpilot/tools"
)

const (
	serverName    = "taskpilot"
	serverVersion = "1.0.0"

	shutdownTimeout = 5 * time.Second
)

// Server wires the tool definitions into an MCP host with its HTTP
// middleware stack.
type Server struct {
	cfg     config.Config
	log     logrus.FieldLogger
	mcp     *mcpserver.MCPServer
	handler http.Handler
	metrics *metrics
}

// New builds a ready-to-serve Server from the given tool definitions.
func New(cfg config.Config, log logrus.FieldLogger, defs []tools.ToolDefinition) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		metrics: newMetrics(),
	}

	s.mcp = mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithRecovery(),
	)
	for _, def := range defs {
		s.mcp.AddTool(
			mcp.NewToolWithRawSchema(def.Name, def.Description, def.InputSchema),
			s.toolHandler(def),
		)
	}
	s.registerWidgets(defs)

	transport := mcpserver.NewStreamableHTTPServer(s.mcp, mcpserver.WithStateLess(true))
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	mux := http.NewServeMux()
	mux.Handle("/mcp", rateLimit(transport, limiter))
	mux.Handle("/metrics", s.metrics.handler())

	s.handler = cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(mux)

	return s
}

// Handler returns the full HTTP stack, exposed for tests.
func (s *Server) Handler() http.Handler { return s.handler }

// toolHandler adapts one ToolDefinition to the mcp-go handler contract.
// Domain failures stay ordinary results (IsError=false, success=false in
// meta); only an undecodable argument payload becomes a protocol tool error.
func (s *Server) toolHandler(def tools.ToolDefinition) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		s.metrics.toolCalls.WithLabelValues(def.Name).Inc()

		raw, err := json.Marshal(req.GetArguments())
		if err != nil {
			s.metrics.toolErrors.WithLabelValues(def.Name).Inc()
			return mcp.NewToolResultError("invalid arguments: " + err.Error()), nil
		}

		res, err := def.Function(raw)
		if err != nil {
			s.metrics.toolErrors.WithLabelValues(def.Name).Inc()
			s.log.WithError(err).WithField("tool", def.Name).Error("tool execution failed")
			return mcp.NewToolResultError(err.Error()), nil
		}

		s.log.WithFields(logrus.Fields{
			"tool":        def.Name,
			"duration_ms": time.Since(start).Milliseconds(),
			"input_size":  len(raw),
			"output_size": len(res.Text),
		}).Debug("tool_exec")

		return callToolResult(def, res), nil
	}
}

// callToolResult converts a tool Result into the wire shape: summary text,
// structured content, and the _meta block, tagged with the widget template
// when the tool declares one.
func callToolResult(def tools.ToolDefinition, res tools.Result) *mcp.CallToolResult {
	fields := make(map[string]any, len(res.Meta)+1)
	for k, v := range res.Meta {
		fields[k] = v
	}
	if def.WidgetURI != "" {
		fields["openai/outputTemplate"] = def.WidgetURI
	}

	out := &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(res.Text)},
		StructuredContent: res.Structured,
	}
	if len(fields) > 0 {
		out.Meta = &mcp.Meta{AdditionalFields: fields}
	}
	return out
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.WithField("addr", s.cfg.Addr).Info("server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
