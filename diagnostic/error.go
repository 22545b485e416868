package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Spans returns every located error in the chain of err, outermost first.
func Spans(err error) (spans []*SpanError) {
	for err != nil {
		var span *SpanError
		if !errors.As(err, &span) {
			break
		}
		spans = append(spans, span)
		err = span.Err
	}
	return spans
}

// DisplayError prints err to stderr, followed by the source excerpt of every
// located error in its chain.
func DisplayError(ctx context.Context, stderr io.Writer, err error) {
	color := Color(ctx)
	fmt.Fprintf(stderr, "%s: %s\n", color.Bold(color.Red("error")), color.Bold(err.Error()))
	for _, span := range Spans(err) {
		fmt.Fprint(stderr, span.Pretty(ctx))
	}
}
