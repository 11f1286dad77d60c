// Package schema builds flag parsers from YAML flag definitions.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rickgorman/flagparser/pkg/flagparser"
)

//go:embed default.yaml
var defaultSchema []byte

// Schema is the YAML form of a set of flag definitions.
type Schema struct {
	Flags []FlagDef `yaml:"flags"`
}

// FlagDef describes one flag.
type FlagDef struct {
	Name string   `yaml:"name"`
	Args []ArgDef `yaml:"args"`
}

// ArgDef describes one argument of a flag.
type ArgDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
}

// Load reads a schema file and builds a parser from it.
// An empty path loads the built-in schema.
func Load(path string, opts ...flagparser.Option) (*flagparser.Parser, error) {
	if path == "" {
		return Default(opts...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	p, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Default builds a parser from the built-in schema.
func Default(opts ...flagparser.Option) (*flagparser.Parser, error) {
	return Parse(defaultSchema, opts...)
}

// Parse decodes YAML schema data and builds a parser from it.
func Parse(data []byte, opts ...flagparser.Option) (*flagparser.Parser, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	return s.Build(opts...)
}

// Build registers every flag of the schema on a new parser.
func (s *Schema) Build(opts ...flagparser.Option) (*flagparser.Parser, error) {
	if len(s.Flags) == 0 {
		return nil, errors.New("schema defines no flags")
	}

	p := flagparser.New(opts...)
	seen := make(map[string]bool)

	for i, fd := range s.Flags {
		if fd.Name == "" {
			return nil, fmt.Errorf("flag #%d has no name", i+1)
		}
		if seen[fd.Name] {
			return nil, fmt.Errorf("flag %q defined more than once", fd.Name)
		}
		seen[fd.Name] = true

		flag, err := fd.build()
		if err != nil {
			return nil, err
		}
		p.Register(flag)
	}

	return p, nil
}

func (fd FlagDef) build() (*flagparser.Flag, error) {
	flag := flagparser.NewFlag(fd.Name)

	for i, ad := range fd.Args {
		if ad.Name == "" {
			return nil, fmt.Errorf("flag %q: argument #%d has no name", fd.Name, i+1)
		}

		dataType := flagparser.Text
		if ad.Type != "" {
			var err error
			if dataType, err = flagparser.ParseDataType(ad.Type); err != nil {
				return nil, fmt.Errorf("flag %q: argument %q: %w", fd.Name, ad.Name, err)
			}
		}

		if err := flag.AddArgument(ad.Name, dataType, ad.Optional); err != nil {
			return nil, err
		}
	}

	return flag, nil
}
