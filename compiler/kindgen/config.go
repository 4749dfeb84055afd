package kindgen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultHeader is the header of generated files.
	DefaultHeader = "Code generated by kindgen, DO NOT EDIT."
	// DefaultOutput is the generated file name.
	DefaultOutput = "kinds_gen.go"
)

// Config holds the configuration for code generation.
type Config struct {
	// Package is the name of the generated package, e.g. "sqlkind".
	Package string `yaml:"package"`
	// Output is the path of the generated file. When loaded from a file, a
	// relative path is resolved against the directory of the file.
	Output string `yaml:"output,omitempty"`
	// Header is the comment placed above the package clause.
	Header string `yaml:"header,omitempty"`
	// Kinds are the statement kinds, in declaration order.
	Kinds []KindSpec `yaml:"kinds"`
}

// KindSpec describes a statement kind.
//
// For every kind the generated package declares a marker type Name, a
// NameKeyword constant, and a NewName constructor. The package must provide
// a renderName(keyword string, f fragments) string function.
type KindSpec struct {
	// Name is the exported Go name of the marker type, e.g. "CreateTable".
	Name string `yaml:"name"`
	// Keyword is the SQL keyword. Defaults to DefaultKeyword(Name).
	Keyword string `yaml:"keyword,omitempty"`
	// Doc replaces the generated doc comment of the marker type.
	Doc string `yaml:"doc,omitempty"`
}

// DefaultKeyword derives the SQL keyword from a kind name: the words of the
// name, upper-cased and separated by spaces. "CreateTable" gives
// "CREATE TABLE".
func DefaultKeyword(name string) string {
	upper := cases.Upper(language.Und)
	words := strings.Split(inflect.Underscore(name), "_")
	for i, w := range words {
		words[i] = upper.String(w)
	}
	return strings.Join(words, " ")
}

func (k KindSpec) keyword() string {
	if k.Keyword != "" {
		return k.Keyword
	}
	return DefaultKeyword(k.Name)
}

func (k KindSpec) doc() string {
	if k.Doc != "" {
		return k.Doc
	}
	return fmt.Sprintf("%s marks builders and queries of %s statements.", k.Name, k.keyword())
}

func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

// Validate checks the configuration before generation.
func (c *Config) Validate() error {
	if c.Package == "" {
		return NewConfigError("Package", nil, "package cannot be empty")
	}
	if !token.IsIdentifier(c.Package) {
		return NewConfigError("Package", c.Package, "package must be a Go identifier")
	}
	if c.Output == "" {
		return NewConfigError("Output", nil, "output path cannot be empty")
	}
	if len(c.Kinds) == 0 {
		return NewConfigError("Kinds", nil, "at least one kind is required")
	}
	names := make(map[string]bool, len(c.Kinds))
	keywords := make(map[string]string, len(c.Kinds))
	for _, k := range c.Kinds {
		switch {
		case !token.IsIdentifier(k.Name):
			return &KindError{Kind: k.Name, Message: "name must be a Go identifier"}
		case !token.IsExported(k.Name):
			return &KindError{Kind: k.Name, Message: "name must be exported"}
		case names[k.Name]:
			return &KindError{Kind: k.Name, Message: "duplicate name"}
		}
		names[k.Name] = true
		kw := k.keyword()
		if strings.TrimSpace(kw) == "" {
			return &KindError{Kind: k.Name, Message: "empty keyword"}
		}
		if other, ok := keywords[kw]; ok {
			return &KindError{Kind: k.Name, Message: fmt.Sprintf("keyword %q already used by %s", kw, other)}
		}
		keywords[kw] = k.Name
	}
	return nil
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kindgen: read config: %w", err)
	}
	c, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(filepath.Dir(path), c.Output)
	}
	return c, nil
}

// Parse decodes and validates a YAML configuration. Unknown keys are
// rejected.
func Parse(buf []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewConfigError("Kinds", nil, "empty configuration")
		}
		return nil, fmt.Errorf("kindgen: decode config: %w", err)
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
