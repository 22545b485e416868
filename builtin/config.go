package builtin

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mlsp/mlsp/diagnostic"
	"github.com/mlsp/mlsp/parser"
	"github.com/mlsp/mlsp/pkg/filebuffer"
	"github.com/mlsp/mlsp/symbol"
	"github.com/mlsp/mlsp/types"
	"github.com/pkg/errors"
)

// Config is the TOML file format for extra built-in identifiers:
//
//	[[identifier]]
//	name = "size"
//	in = "string"
//	out = "int"
//	kind = "function"
//	description = "Returns the length of a string."
type Config struct {
	Identifiers []IdentifierConfig `toml:"identifier"`
}

type IdentifierConfig struct {
	Name        string `toml:"name"`
	In          string `toml:"in"`
	Out         string `toml:"out"`
	Description string `toml:"description"`
	Kind        string `toml:"kind"`
	Value       string `toml:"value"`
}

// LoadFile reads extra built-in identifiers from a TOML file. Syntax errors
// are located in the file with a diagnostic.SpanError.
func LoadFile(filename string) ([]symbol.Identifier, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fb := filebuffer.New(filename)
	_, err = io.Copy(fb, f)
	if err != nil {
		return nil, err
	}

	ids, err := Load(bytes.NewReader(fb.Bytes()))
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			err = diagnostic.WithError(errors.New(perr.Message), fb.PositionAt(perr.Position.Start), fb)
		}
		return nil, errors.Wrapf(err, "failed to load builtins from %s", filename)
	}
	return ids, nil
}

// Load reads extra built-in identifiers in TOML format from r.
func Load(r io.Reader) ([]symbol.Identifier, error) {
	var cfg Config
	_, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, err
	}

	var ids []symbol.Identifier
	for i, ic := range cfg.Identifiers {
		id, err := ic.Identifier()
		if err != nil {
			return nil, errors.Wrapf(err, "identifier #%d", i+1)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Identifier converts the configuration into an identifier. Empty type
// signatures leave the corresponding type unset.
func (ic IdentifierConfig) Identifier() (symbol.Identifier, error) {
	if ic.Name == "" {
		return symbol.Identifier{}, errors.New("missing name")
	}

	in, err := signature(ic.In)
	if err != nil {
		return symbol.Identifier{}, errors.Wrapf(err, "%s", ic.Name)
	}

	out, err := signature(ic.Out)
	if err != nil {
		return symbol.Identifier{}, errors.Wrapf(err, "%s", ic.Name)
	}

	return symbol.Identifier{
		Name:        ic.Name,
		In:          in,
		Out:         out,
		Description: ic.Description,
		Kind:        symbol.ParseKind(ic.Kind),
		Value:       ic.Value,
	}, nil
}

func signature(s string) (types.Type, error) {
	if s == "" {
		return nil, nil
	}
	return parser.ParseSignature(s)
}
