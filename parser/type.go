package parser

import (
	"regexp"
	"strings"

	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
)

var (
	charPattern = regexp.MustCompile(`^#\S+$`)
	intPattern  = regexp.MustCompile(`^\d+$`)
	realPattern = regexp.MustCompile(`^\d+\.\d+$`)
	boolPattern = regexp.MustCompile(`true|false|=|<|>|andalso|orelse`)
)

// ParseType returns a best guess of the type of a source fragment. It never
// fails: anything it cannot make sense of is an unbound type variable.
//
// Identifiers are resolved against reg, which may be nil.
func ParseType(reg *symbol.Registry, fragment string) types.Type {
	switch {
	case enclosed(fragment, '[', ']'):
		inner := fragment[1 : len(fragment)-1]
		first := SplitTopLevel(inner)[0]
		if first == "" {
			first = inner
		}
		return types.NewList(ParseType(reg, strings.TrimSpace(first)))
	case enclosed(fragment, '(', ')'):
		var elems []types.Type
		for _, segment := range SplitTopLevel(fragment[1 : len(fragment)-1]) {
			elems = append(elems, ParseType(reg, strings.TrimSpace(segment)))
		}
		return types.NewTuple(elems...)
	case charPattern.MatchString(fragment):
		return types.New(types.Char)
	case enclosed(fragment, '"', '"'):
		return types.New(types.String)
	case intPattern.MatchString(fragment):
		return types.New(types.Int)
	case realPattern.MatchString(fragment):
		return types.New(types.Real)
	case boolPattern.MatchString(fragment):
		return types.New(types.Bool)
	case strings.Contains(fragment, "::"):
		head := fragment[:strings.Index(fragment, "::")]
		return types.NewList(ParseType(reg, strings.TrimSpace(head)))
	}

	if reg != nil {
		if t, ok := reg.Lookup(fragment); ok {
			return types.Instantiate(t)
		}
	}

	if identLen(fragment) < len(fragment) {
		return parseCompound(reg, fragment)
	}
	return types.NewVar()
}

// parseCompound handles a token followed by trailing syntax, e.g. "f x" or
// "hd xs". A second segment with a concrete type masks the first.
func parseCompound(reg *symbol.Registry, fragment string) types.Type {
	segments := splitFunc(fragment, isCompoundDelimiter)
	if len(segments) < 2 {
		return types.NewVar()
	}

	first := ParseType(reg, segments[0])
	mask := ParseType(reg, segments[1])
	if types.IsUnbound(mask) {
		return first
	}
	return types.NewMasked(first, types.Uniform(mask.String()))
}

func enclosed(s string, open, close byte) bool {
	return len(s) >= 2 && s[0] == open && s[len(s)-1] == close
}

// identLen returns the length of the leading run of identifier characters.
func identLen(s string) int {
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return i
		}
	}
	return len(s)
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '.' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isCompoundDelimiter(c byte) bool {
	switch c {
	case '#', '[', ']', '"':
		return false
	}
	return !isIdentChar(c)
}

// splitFunc splits s around every byte satisfying f, keeping empty segments.
func splitFunc(s string, f func(byte) bool) []string {
	var (
		segments []string
		start    int
	)
	for i := 0; i < len(s); i++ {
		if f(s[i]) {
			segments = append(segments, s[start:i])
			start = i + 1
		}
	}
	return append(segments, s[start:])
}
