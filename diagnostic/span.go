package diagnostic

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/lexer"
	"github.com/mlsp/mlsp/pkg/filebuffer"
)

// SpanError is an error located at a position of a source file.
type SpanError struct {
	Err    error
	Pos    lexer.Position
	Source *filebuffer.FileBuffer
}

// WithError locates err at pos. Source is optional and used to print the
// offending line.
func WithError(err error, pos lexer.Position, source *filebuffer.FileBuffer) error {
	if source != nil && pos.Filename == "" {
		pos.Filename = source.Filename()
	}
	return &SpanError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}

func (se *SpanError) Error() string {
	return fmt.Sprintf("%s %s", FormatPos(se.Pos), se.Err)
}

func (se *SpanError) Unwrap() error {
	return se.Err
}

// Pretty renders the error with the offending source line and a caret
// under its column.
func (se *SpanError) Pretty(ctx context.Context) string {
	color := Color(ctx)

	var sb strings.Builder
	sb.WriteString(fmt.Sprint(color.Underline(FormatPos(se.Pos))))
	sb.WriteString("\n")

	if se.Source == nil || se.Pos.Line < 1 {
		return sb.String()
	}
	line, err := se.Source.Line(se.Pos.Line - 1)
	if err != nil {
		return sb.String()
	}

	ln := fmt.Sprintf("%d", se.Pos.Line)
	gutter := strings.Repeat(" ", len(ln))
	fmt.Fprintf(&sb, "%s %s\n", gutter, color.Blue("|"))
	fmt.Fprintf(&sb, "%s %s %s\n", color.Blue(ln), color.Blue("|"), line)

	column := se.Pos.Column - 1
	if column < 0 {
		column = 0
	}
	// Tabs keep their width so the caret lines up.
	var padding strings.Builder
	for i := 0; i < column && i < len(line); i++ {
		if line[i] == '\t' {
			padding.WriteByte('\t')
		} else {
			padding.WriteByte(' ')
		}
	}
	fmt.Fprintf(&sb, "%s %s %s%s\n", gutter, color.Blue("|"), padding.String(), color.Red("^"))
	return sb.String()
}

// FormatPos returns a lexer.Position formatted as a string.
func FormatPos(pos lexer.Position) string {
	return fmt.Sprintf("%s:%d:%d:", pos.Filename, pos.Line, pos.Column)
}
