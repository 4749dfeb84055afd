package kindgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyword(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Select", "SELECT"},
		{"Insert", "INSERT"},
		{"CreateTable", "CREATE TABLE"},
		{"AlterTableAdd", "ALTER TABLE ADD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultKeyword(tt.name))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"valid", Config{Package: "sqlkind", Output: "k.go", Kinds: []KindSpec{{Name: "Select"}}}, nil},
		{"no_package", Config{Output: "k.go", Kinds: []KindSpec{{Name: "Select"}}}, ErrMissingConfig},
		{"bad_package", Config{Package: "sql-kind", Output: "k.go", Kinds: []KindSpec{{Name: "Select"}}}, ErrMissingConfig},
		{"no_output", Config{Package: "sqlkind", Kinds: []KindSpec{{Name: "Select"}}}, ErrMissingConfig},
		{"no_kinds", Config{Package: "sqlkind", Output: "k.go"}, ErrMissingConfig},
		{"unexported", Config{Package: "sqlkind", Output: "k.go", Kinds: []KindSpec{{Name: "select"}}}, ErrInvalidKind},
		{"not_identifier", Config{Package: "sqlkind", Output: "k.go", Kinds: []KindSpec{{Name: "Create Table"}}}, ErrInvalidKind},
		{"duplicate_name", Config{Package: "sqlkind", Output: "k.go", Kinds: []KindSpec{{Name: "Select"}, {Name: "Select"}}}, ErrInvalidKind},
		{
			"duplicate_keyword",
			Config{Package: "sqlkind", Output: "k.go", Kinds: []KindSpec{{Name: "Select"}, {Name: "Query", Keyword: "SELECT"}}},
			ErrInvalidKind,
		},
		{"blank_keyword", Config{Package: "sqlkind", Output: "k.go", Kinds: []KindSpec{{Name: "Select", Keyword: "  "}}}, ErrInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := Parse([]byte("package: sqlkind\nkinds:\n  - name: Select\n  - name: CreateTable\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultOutput, c.Output)
		require.Len(t, c.Kinds, 2)
		assert.Equal(t, "CREATE TABLE", c.Kinds[1].keyword())
		assert.Equal(t, DefaultHeader, c.header())
	})

	t.Run("explicit", func(t *testing.T) {
		c, err := Parse([]byte(`
package: query
output: gen.go
header: Custom header.
kinds:
  - name: Upsert
    keyword: INSERT OR REPLACE
    doc: Upsert marks upserts.
`))
		require.NoError(t, err)
		assert.Equal(t, "query", c.Package)
		assert.Equal(t, "gen.go", c.Output)
		assert.Equal(t, "Custom header.", c.header())
		assert.Equal(t, "INSERT OR REPLACE", c.Kinds[0].keyword())
		assert.Equal(t, "Upsert marks upserts.", c.Kinds[0].doc())
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Parse([]byte("package: sqlkind\nkind:\n  - name: Select\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kindgen: decode config")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse(nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Parse([]byte("package: sqlkind\nkinds:\n  - name: select\n"))
		assert.True(t, IsKindError(err))
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kinds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: sqlkind\nkinds:\n  - name: Delete\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultOutput), c.Output)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
