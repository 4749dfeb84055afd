package kindgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Names the generated code refers to. They are declared by the hand-written
// part of the target package.
const (
	builderType   = "QueryBuilder"
	fragmentsType = "fragments"
	renderPrefix  = "render"
)

// Generate returns the formatted source of the kinds file.
func Generate(c *Config) ([]byte, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := jen.NewFile(c.Package)
	f.HeaderComment(c.header())
	for i, k := range c.Kinds {
		if i > 0 {
			f.Line()
		}
		genKind(f, k)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("kindgen: render %s: %w", c.Output, err)
	}
	src, err := imports.Process(c.Output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("kindgen: format %s: %w", c.Output, err)
	}
	return src, nil
}

// genKind emits the marker type, keyword constant, methods and constructor
// of a kind.
func genKind(f *jen.File, k KindSpec) {
	name, keyword := k.Name, k.Name+"Keyword"

	f.Comment(k.doc())
	f.Type().Id(name).Struct()
	f.Line()

	f.Commentf("%s is the SQL keyword of the %s kind.", keyword, name)
	f.Const().Id(keyword).Op("=").Lit(k.keyword())
	f.Line()

	f.Commentf("Keyword returns %s.", keyword)
	f.Func().Params(jen.Id(name)).Id("Keyword").Params().String().Block(
		jen.Return(jen.Id(keyword)),
	)
	f.Line()

	f.Func().Params(jen.Id(name)).Id("render").Params(jen.Id("kw").String(), jen.Id("f").Id(fragmentsType)).String().Block(
		jen.Return(jen.Id(renderPrefix+name).Call(jen.Id("kw"), jen.Id("f"))),
	)
	f.Line()

	f.Commentf("New%s returns an empty builder of %s statements.", name, name)
	f.Func().Id("New" + name).Params().Id(builderType).Types(jen.Id(name)).Block(
		jen.Return(jen.Id(builderType).Types(jen.Id(name)).Values()),
	)
}

// WriteFile generates the kinds file and writes it to c.Output.
func WriteFile(c *Config) error {
	src, err := Generate(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("kindgen: create output directory: %w", err)
		}
	}
	if err := os.WriteFile(c.Output, src, 0o644); err != nil {
		return fmt.Errorf("kindgen: write %s: %w", c.Output, err)
	}
	return nil
}
