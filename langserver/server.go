package langserver

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/participle/lexer"
	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"
	"github.com/mlsp/mlsp/builtin"
	"github.com/mlsp/mlsp/parser"
	"github.com/mlsp/mlsp/pkg/filebuffer"
	"github.com/mlsp/mlsp/symbol"
	lsp "github.com/sourcegraph/go-lsp"
)

type LangServer struct {
	server *jrpc2.Server
	capset map[Capability]struct{}

	builtins []symbol.Identifier
	registry *symbol.Registry
	interval time.Duration

	tds map[lsp.DocumentURI]TextDocument
	tmu sync.RWMutex

	dbs map[lsp.DocumentURI]*debouncer
	dmu sync.Mutex
}

type Capability int

const (
	_ Capability = iota
	SemanticHighlightingCapability
)

// DefaultDebounce is the debounce interval of a server created without
// WithDebounce.
const DefaultDebounce = 10 * time.Millisecond

type Option func(*LangServer)

// WithBuiltins adds identifiers to the built-in table. Later identifiers
// shadow earlier ones of the same name.
func WithBuiltins(ids ...symbol.Identifier) Option {
	return func(ls *LangServer) {
		ls.builtins = append(ls.builtins, ids...)
	}
}

// WithDebounce sets how long document changes are held back before being
// applied. Only the last change within the interval is applied.
func WithDebounce(interval time.Duration) Option {
	return func(ls *LangServer) {
		ls.interval = interval
	}
}

func NewServer(opts ...Option) *LangServer {
	ls := &LangServer{
		capset:   make(map[Capability]struct{}),
		builtins: append([]symbol.Identifier{}, builtin.Identifiers...),
		interval: DefaultDebounce,
		tds:      make(map[lsp.DocumentURI]TextDocument),
		dbs:      make(map[lsp.DocumentURI]*debouncer),
	}
	for _, opt := range opts {
		opt(ls)
	}

	ls.registry = symbol.NewRegistry()
	ls.registry.Declare(ls.builtins...)

	ls.server = jrpc2.NewServer(handler.Map{
		"initialize":              handler.New(ls.initializeHandler),
		"exit":                    handler.New(ls.exitHandler),
		"$/cancelRequest":         handler.New(ls.cancelRequestHandler),
		"textDocument/didOpen":    handler.New(ls.textDocumentDidOpenHandler),
		"textDocument/didClose":   handler.New(ls.textDocumentDidCloseHandler),
		"textDocument/didChange":  handler.New(ls.textDocumentDidChangeHandler),
		"textDocument/hover":      handler.New(ls.textDocumentHoverHandler),
		"textDocument/definition": handler.New(ls.textDocumentDefinitionHandler),
		"textDocument/completion": handler.New(ls.textDocumentCompletionHandler),
	}, &jrpc2.ServerOptions{
		AllowPush: true,
	})

	return ls
}

func (ls *LangServer) Listen(ctx context.Context, r io.Reader, w io.WriteCloser) error {
	defer func() {
		r := recover()
		if r != nil {
			log.Printf("listen recovered panic: %s", r)
		}
	}()

	log.Printf("mlsp-langserver listening")
	s := ls.server.Start(channel.Header("")(r, w))
	return s.Wait()
}

func (ls *LangServer) initializeHandler(ctx context.Context, params lsp.InitializeParams) (lsp.InitializeResult, error) {
	log.Printf("initialize %q", params.RootURI)

	highlightCap := params.Capabilities.TextDocument.SemanticHighlightingCapabilities
	if highlightCap != nil && highlightCap.SemanticHighlighting {
		ls.capset[SemanticHighlightingCapability] = struct{}{}
		log.Printf("detected cap semantic highlighting")
	}

	var scopes [][]string
	for _, scope := range Scopes {
		scopes = append(scopes, []string{scope.String()})
	}

	return lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			DefinitionProvider: true,
			HoverProvider:      true,
			CompletionProvider: &lsp.CompletionOptions{
				TriggerCharacters: ls.triggerCharacters(),
			},
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			SemanticHighlighting: &lsp.SemanticHighlightingOptions{
				Scopes: scopes,
			},
		},
	}, nil
}

func (ls *LangServer) exitHandler(ctx context.Context, params lsp.None) error {
	log.Printf("exit")
	return nil
}

func (ls *LangServer) cancelRequestHandler(ctx context.Context, params lsp.None) error {
	log.Printf("cancel request")
	return nil
}

func (ls *LangServer) textDocumentDidOpenHandler(ctx context.Context, params lsp.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Printf("did open %q", uri)

	td := NewTextDocument(uri, params.TextDocument.Version, params.TextDocument.Text)

	ls.tmu.Lock()
	ls.tds[uri] = td
	ls.tmu.Unlock()

	ls.highlight(ctx, td)
	return nil
}

func (ls *LangServer) textDocumentDidCloseHandler(ctx context.Context, params lsp.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Printf("did close %q", uri)

	ls.tmu.Lock()
	delete(ls.tds, uri)
	ls.tmu.Unlock()

	ls.dmu.Lock()
	if d, ok := ls.dbs[uri]; ok {
		d.stop()
		delete(ls.dbs, uri)
	}
	ls.dmu.Unlock()
	return nil
}

func (ls *LangServer) textDocumentDidChangeHandler(ctx context.Context, params lsp.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Printf("did change %q", uri)

	return ls.debounce(uri, func() error {
		ls.tmu.Lock()
		defer ls.tmu.Unlock()

		_, ok := ls.tds[uri]
		if !ok {
			return fmt.Errorf("unknown uri %q", uri)
		}

		for _, change := range params.ContentChanges {
			td := NewTextDocument(uri, params.TextDocument.Version, change.Text)
			ls.highlight(ctx, td)
			ls.tds[uri] = td
		}
		return nil
	})
}

func (ls *LangServer) document(uri lsp.DocumentURI) (TextDocument, error) {
	ls.tmu.RLock()
	defer ls.tmu.RUnlock()

	td, ok := ls.tds[uri]
	if !ok {
		return TextDocument{}, fmt.Errorf("unknown uri %q", uri)
	}
	return td, nil
}

type debounceRequest struct {
	f    func() error
	done chan error
}

// debouncer applies only the last of the functions published within an
// interval. Superseded functions complete with a nil error without running.
type debouncer struct {
	requests chan debounceRequest
	quit     chan struct{}
	once     sync.Once
}

func newDebouncer(interval time.Duration) *debouncer {
	d := &debouncer{
		requests: make(chan debounceRequest),
		quit:     make(chan struct{}),
	}

	go func() {
		var (
			pending *debounceRequest
			fire    <-chan time.Time
		)
		for {
			select {
			case req := <-d.requests:
				if pending != nil {
					pending.done <- nil
				}
				pending = &req
				fire = time.After(interval)
			case <-fire:
				pending.done <- pending.f()
				pending, fire = nil, nil
			case <-d.quit:
				if pending != nil {
					pending.done <- nil
				}
				return
			}
		}
	}()

	return d
}

func (d *debouncer) debounce(f func() error) error {
	done := make(chan error, 1)
	select {
	case d.requests <- debounceRequest{f: f, done: done}:
	case <-d.quit:
		return nil
	}
	return <-done
}

func (d *debouncer) stop() {
	d.once.Do(func() {
		close(d.quit)
	})
}

func (ls *LangServer) debounce(uri lsp.DocumentURI, f func() error) error {
	ls.dmu.Lock()
	d, ok := ls.dbs[uri]
	if !ok {
		d = newDebouncer(ls.interval)
		ls.dbs[uri] = d
	}
	ls.dmu.Unlock()

	return d.debounce(f)
}

// TextDocument is an open document with its lexed tokens and the bindings
// declared in it.
type TextDocument struct {
	Identifier lsp.VersionedTextDocumentIdentifier
	Buffer     *filebuffer.FileBuffer
	Tokens     []lexer.Token
	Bindings   []parser.Binding
	Text       string
}

func NewTextDocument(uri lsp.DocumentURI, version int, text string) TextDocument {
	td := TextDocument{
		Identifier: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{
				URI: uri,
			},
			Version: version,
		},
		Buffer: filebuffer.NewString(strings.TrimPrefix(string(uri), "file://"), text),
		Text:   text,
	}

	var err error
	td.Tokens, err = parser.Tokenize(text)
	if err != nil {
		log.Printf("failed to lex %q: %s", uri, err)
	}
	td.Bindings = parser.Scan(text)
	return td
}

// Offset returns the byte offset of an LSP position.
func (td TextDocument) Offset(pos lsp.Position) int {
	return td.Buffer.Offset(pos.Line, pos.Character)
}
