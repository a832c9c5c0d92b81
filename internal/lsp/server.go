package lsp

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/joshrandall8478/color-wizard/internal/resolver"
)

const serverName = "colorwizard-lsp"

// Server is a language server for palette files. Every attribute value
// runs through the resolution pipeline, so hovers, inline color
// swatches, and diagnostics cover hex codes, CSS names, and vague
// descriptions alike.
type Server struct {
	handler  protocol.Handler
	docs     *DocumentStore
	pipeline *resolver.Pipeline
	version  string

	mu      sync.RWMutex
	results map[string]*AnalysisResult
}

func NewServer(pipe *resolver.Pipeline, version string) *Server {
	s := &Server{
		docs:     NewDocumentStore(),
		pipeline: pipe,
		version:  version,
		results:  make(map[string]*AnalysisResult),
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentDefinition:        s.textDocumentDefinition,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s
}

func (s *Server) Run() error {
	commonlog.Configure(1, nil)
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.analyze(ctx, uri, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.docs.Put(uri, c.Text, params.TextDocument.Version)
			s.analyze(ctx, uri, c.Text)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Close(uri)

	s.mu.Lock()
	delete(s.results, uri)
	s.mu.Unlock()
	return nil
}

// analyze re-runs analysis for a document and publishes its diagnostics.
func (s *Server) analyze(ctx *glsp.Context, uri, content string) {
	result := Analyze(uri, content, s.pipeline)

	s.mu.Lock()
	s.results[uri] = result
	s.mu.Unlock()

	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	if ctx != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentUri(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) getResult(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results[uri]
}
