// Package lsp serves semantic tokens over the Language Server Protocol,
// computed by lexing open documents with a registered grammar.
package lsp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/stacklex/grammars"
	"github.com/dhamidi/stacklex/lex"
)

const lsName = "stacklex"

type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	grammar   *lex.Grammar[string]
	legend    []string
	typeIndex map[string]protocol.UInteger

	mu   sync.Mutex
	docs map[string]string
}

// NewServer creates a server that tokenizes documents with the registry
// grammar named grammarName.
func NewServer(version, grammarName string) (*Server, error) {
	build, err := grammars.Lookup(grammarName)
	if err != nil {
		return nil, err
	}
	grammar := build()

	legend := grammar.TokenTypes()
	typeIndex := make(map[string]protocol.UInteger, len(legend))
	for i, name := range legend {
		typeIndex[name] = protocol.UInteger(i)
	}

	s := &Server{
		version:   version,
		grammar:   grammar,
		legend:    legend,
		typeIndex: typeIndex,
		docs:      make(map[string]string),
	}

	s.handler = protocol.Handler{
		Initialize:                     s.initialize,
		Initialized:                    s.initialized,
		Shutdown:                       s.shutdown,
		SetTrace:                       s.setTrace,
		TextDocumentDidOpen:            s.textDocumentDidOpen,
		TextDocumentDidChange:          s.textDocumentDidChange,
		TextDocumentDidClose:           s.textDocumentDidClose,
		TextDocumentSemanticTokensFull: s.textDocumentSemanticTokensFull,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s, nil
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.SemanticTokensProvider = protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes:     s.legend,
			TokenModifiers: []string{},
		},
		Full: true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[string(params.TextDocument.URI)] = params.TextDocument.Text
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[string(params.TextDocument.URI)] = textChange.Text
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, string(params.TextDocument.URI))
	return nil
}

func (s *Server) textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := string(params.TextDocument.URI)

	s.mu.Lock()
	content, ok := s.docs[uri]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown document %s", uri)
	}

	// Best-effort: broken input still highlights everything before the
	// first unmatched byte.
	tokens, err := lex.NewLexer(s.grammar).BestEffort().LexNamed(uri, content)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens, s.typeIndex),
	}, nil
}

// encodeSemanticTokens lowers a token stream into the LSP delta encoding:
// five uints per token (delta line, delta start char, length, type index,
// modifier bits). Lines and columns become 0-based; a token spanning lines
// is clamped to its first line, since the encoding cannot express more.
func encodeSemanticTokens(tokens []lex.Token[string], typeIndex map[string]protocol.UInteger) []protocol.UInteger {
	data := make([]protocol.UInteger, 0, len(tokens)*5)
	prevLine, prevCol := 0, 0
	for _, tk := range tokens {
		idx, ok := typeIndex[tk.Type()]
		if !ok {
			continue
		}

		line := tk.Start().Line - 1
		col := tk.Start().Col - 1
		length := len(tk.Text())
		if nl := strings.IndexByte(tk.Text(), '\n'); nl >= 0 {
			length = nl
		}

		deltaLine := line - prevLine
		deltaCol := col
		if deltaLine == 0 {
			deltaCol = col - prevCol
		}
		data = append(data,
			protocol.UInteger(deltaLine),
			protocol.UInteger(deltaCol),
			protocol.UInteger(length),
			idx,
			0,
		)
		prevLine, prevCol = line, col
	}
	return data
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
