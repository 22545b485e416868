package builtin

import (
	"fmt"
	"strings"
)

// Keyword is a language keyword with an optional snippet template. Template
// placeholders $1, $2, ... are described by Params.
type Keyword struct {
	Name     string
	Template string
	Params   []string
}

// Detail returns the template with every placeholder replaced by the name of
// its parameter, e.g. "then <function> else <function>".
func (k Keyword) Detail() (string, bool) {
	if k.Template == "" {
		return "", false
	}
	detail := k.Template
	for i := len(k.Params) - 1; i >= 0; i-- {
		detail = strings.ReplaceAll(detail, fmt.Sprintf("$%d", i+1), fmt.Sprintf("<%s>", k.Params[i]))
	}
	return detail, true
}

// InsertText returns the snippet inserted by completing k.
func (k Keyword) InsertText() string {
	if k.Template == "" {
		return k.Name
	}
	return k.Template
}
