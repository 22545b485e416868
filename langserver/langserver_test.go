package langserver

import (
	"context"
	"testing"
	"time"

	"github.com/lithammer/dedent"
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/stretchr/testify/require"
)

const testURI = lsp.DocumentURI("file:///tmp/test.sml")

func openDocument(t *testing.T, ls *LangServer, text string) TextDocument {
	err := ls.textDocumentDidOpenHandler(context.Background(), lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{
			URI:     testURI,
			Version: 1,
			Text:    text,
		},
	})
	require.NoError(t, err)

	td, err := ls.document(testURI)
	require.NoError(t, err)
	return td
}

func findItem(items []lsp.CompletionItem, label string) (lsp.CompletionItem, bool) {
	for _, item := range items {
		if item.Label == label {
			return item, true
		}
	}
	return lsp.CompletionItem{}, false
}

func TestComplete(t *testing.T) {
	t.Parallel()

	ls := NewServer()
	items := ls.Complete(dedent.Dedent(`
		val x = 42;
		fun inc (y) = x;
		fun pick (a, b) = a
	`))

	item, ok := findItem(items, "hd")
	require.True(t, ok)
	require.Equal(t, lsp.CIKFunction, item.Kind)
	require.Equal(t, "hd : 'a list -> 'a", item.Detail)
	require.Equal(t, "Returns the first element of a list.", item.Documentation)

	item, ok = findItem(items, "nil")
	require.True(t, ok)
	require.Equal(t, lsp.CIKConstant, item.Kind)
	require.Equal(t, "nil = [] : 'a list", item.Detail)

	item, ok = findItem(items, "then")
	require.True(t, ok)
	require.Equal(t, lsp.CIKKeyword, item.Kind)
	require.Equal(t, "then <function> else <function>", item.Detail)
	require.Equal(t, "then $1 else $2", item.InsertText)
	require.Equal(t, lsp.ITFSnippet, item.InsertTextFormat)

	item, ok = findItem(items, "x")
	require.True(t, ok)
	require.Equal(t, lsp.CIKVariable, item.Kind)
	require.Equal(t, "val x = 42 : int", item.Detail)
	require.Equal(t, "User-defined variable", item.Documentation)

	item, ok = findItem(items, "inc")
	require.True(t, ok)
	require.Equal(t, lsp.CIKFunction, item.Kind)
	require.Equal(t, "inc : 'a -> int", item.Detail)
	require.Equal(t, "User-defined function", item.Documentation)

	_, ok = findItem(items, "pick")
	require.False(t, ok)

	item, ok = findItem(items, "| pick () =")
	require.True(t, ok)
	require.Equal(t, lsp.CIKSnippet, item.Kind)
	require.Equal(t, "   pick ($1) = $2", item.InsertText)
	require.Equal(t, "| pick (<params>) = <code>;", item.Detail)
	require.Equal(t, "Adds a pattern to a function.", item.Documentation)
}

func TestComplete_Operators(t *testing.T) {
	t.Parallel()

	ls := NewServer()
	var details []string
	for _, item := range ls.Complete("") {
		if item.Label == "+" {
			require.Equal(t, lsp.CIKOperator, item.Kind)
			details = append(details, item.Detail)
		}
	}
	require.Equal(t, []string{
		"int + int : int",
		"real + real : real",
	}, details)

	_, ok := findItem(ls.Complete(""), "| f () =")
	require.False(t, ok)
}

func TestComplete_Builtins(t *testing.T) {
	t.Parallel()

	ls := NewServer(WithBuiltins(symbol.Identifier{
		Name:        "size",
		In:          types.New(types.String),
		Out:         types.New(types.Int),
		Description: "Returns the length of a string.",
		Kind:        symbol.Function,
	}))

	items := ls.Complete("val n = size;")
	item, ok := findItem(items, "size")
	require.True(t, ok)
	require.Equal(t, "size : string -> int", item.Detail)

	item, ok = findItem(items, "n")
	require.True(t, ok)
	require.Equal(t, "val n = size : int", item.Detail)

	require.Contains(t, ls.triggerCharacters(), "s")
}

func TestTriggerCharacters(t *testing.T) {
	t.Parallel()

	chars := NewServer().triggerCharacters()
	for _, c := range []string{"h", "t", "+", "-", "*", "/", "^", "@", ":", "u", "e", "r", "a", "o", "|"} {
		require.Contains(t, chars, c)
	}

	seen := make(map[string]struct{})
	for _, c := range chars {
		_, ok := seen[c]
		require.False(t, ok, "duplicate trigger %q", c)
		seen[c] = struct{}{}
	}
}

func TestCompletionHandler(t *testing.T) {
	t.Parallel()

	ls := NewServer()
	openDocument(t, ls, "val a = 1;\nval b = 2.5;\n")

	list, err := ls.textDocumentCompletionHandler(context.Background(), lsp.CompletionParams{
		TextDocumentPositionParams: lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
			Position:     lsp.Position{Line: 1, Character: 0},
		},
	})
	require.NoError(t, err)

	_, ok := findItem(list.Items, "a")
	require.True(t, ok)
	_, ok = findItem(list.Items, "b")
	require.False(t, ok)

	_, err = ls.textDocumentCompletionHandler(context.Background(), lsp.CompletionParams{
		TextDocumentPositionParams: lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: "file:///missing.sml"},
		},
	})
	require.Error(t, err)
}

func TestHover(t *testing.T) {
	t.Parallel()

	ls := NewServer()
	td := openDocument(t, ls, dedent.Dedent(`
		val xs = [1, 2];
		val first = hd xs;
		val xs = 3.0;
		val ys = xs;
		val z = hdd;
	`))

	for _, tc := range []struct {
		name     string
		pos      lsp.Position
		expected []lsp.MarkedString
	}{{
		"builtin",
		lsp.Position{Line: 2, Character: 13},
		[]lsp.MarkedString{
			{Language: "sml", Value: "hd : 'a list -> 'a"},
			lsp.RawMarkedString("Returns the first element of a list."),
		},
	}, {
		"earlier binding",
		lsp.Position{Line: 2, Character: 16},
		[]lsp.MarkedString{
			{Language: "sml", Value: "val xs = [1, 2] : int list"},
			lsp.RawMarkedString("User-defined variable"),
		},
	}, {
		"shadowing binding",
		lsp.Position{Line: 4, Character: 10},
		[]lsp.MarkedString{
			{Language: "sml", Value: "val xs = 3.0 : real"},
			lsp.RawMarkedString("User-defined variable"),
		},
	}, {
		"empty line",
		lsp.Position{Line: 0, Character: 0},
		nil,
	}, {
		"misspelled",
		lsp.Position{Line: 5, Character: 9},
		[]lsp.MarkedString{
			lsp.RawMarkedString("did you mean `hd`?"),
		},
	}} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := ls.Hover(td, tc.pos)
			require.Equal(t, tc.expected, h.Contents)
		})
	}

	h := ls.Hover(td, lsp.Position{Line: 2, Character: 13})
	require.NotNil(t, h.Range)
	require.Equal(t, lsp.Range{
		Start: lsp.Position{Line: 2, Character: 12},
		End:   lsp.Position{Line: 2, Character: 14},
	}, *h.Range)
}

func TestHover_Keyword(t *testing.T) {
	t.Parallel()

	ls := NewServer()
	td := openDocument(t, ls, "if a then b else c")

	h := ls.Hover(td, lsp.Position{Line: 0, Character: 6})
	require.Equal(t, []lsp.MarkedString{
		{Language: "sml", Value: "then <function> else <function>"},
	}, h.Contents)
}

func TestDefinition(t *testing.T) {
	t.Parallel()

	ls := NewServer()
	td := openDocument(t, ls, "val x = 1;\nfun f (n) = x;\nval y = f x;\nval x = 2;\n")

	loc := Definition(td, lsp.Position{Line: 2, Character: 8})
	require.NotNil(t, loc)
	require.Equal(t, testURI, loc.URI)
	require.Equal(t, lsp.Range{
		Start: lsp.Position{Line: 1, Character: 4},
		End:   lsp.Position{Line: 1, Character: 5},
	}, loc.Range)

	loc = Definition(td, lsp.Position{Line: 2, Character: 10})
	require.NotNil(t, loc)
	require.Equal(t, 0, loc.Range.Start.Line)

	loc = Definition(td, lsp.Position{Line: 0, Character: 0})
	require.Nil(t, loc)

	locs, err := ls.textDocumentDefinitionHandler(context.Background(), lsp.TextDocumentPositionParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
		Position:     lsp.Position{Line: 3, Character: 4},
	})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	require.Equal(t, 3, locs[0].Range.Start.Line)
}

func TestDocumentSync(t *testing.T) {
	t.Parallel()

	ls := NewServer(WithDebounce(time.Millisecond))
	openDocument(t, ls, "val a = 1;")

	err := ls.textDocumentDidChangeHandler(context.Background(), lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{
			{Text: "val b = 2;"},
		},
	})
	require.NoError(t, err)

	td, err := ls.document(testURI)
	require.NoError(t, err)
	require.Equal(t, "val b = 2;", td.Text)
	require.Equal(t, 2, td.Identifier.Version)
	require.Len(t, td.Bindings, 1)
	require.Equal(t, "b", td.Bindings[0].Name.Value)

	err = ls.textDocumentDidCloseHandler(context.Background(), lsp.DidCloseTextDocumentParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	_, err = ls.document(testURI)
	require.Error(t, err)
}

func TestDebouncer(t *testing.T) {
	t.Parallel()

	d := newDebouncer(100 * time.Millisecond)
	defer d.stop()

	var (
		ran     = make(chan string, 2)
		results = make(chan error, 2)
	)
	go func() {
		results <- d.debounce(func() error {
			ran <- "first"
			return nil
		})
	}()
	time.Sleep(5 * time.Millisecond)
	go func() {
		results <- d.debounce(func() error {
			ran <- "second"
			return nil
		})
	}()

	require.NoError(t, <-results)
	require.NoError(t, <-results)
	require.Equal(t, "second", <-ran)
	require.Len(t, ran, 0)
}
