package kindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPackage(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithPackage("sqlkind")(c))
	assert.Equal(t, "sqlkind", c.Package)

	for _, name := range []string{"", "sql-kind", "1kind"} {
		err := WithPackage(name)(c)
		require.Error(t, err, name)
		assert.True(t, IsConfigError(err))
	}
}

func TestWithOutput(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithOutput("gen.go")(c))
	assert.Equal(t, "gen.go", c.Output)
	assert.True(t, IsConfigError(WithOutput("")(c)))
}

func TestWithKinds(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithKinds(KindSpec{Name: "Select"})(c))
	require.NoError(t, WithKinds(KindSpec{Name: "Delete"})(c))
	assert.Equal(t, []KindSpec{{Name: "Select"}, {Name: "Delete"}}, c.Kinds)
	assert.True(t, IsConfigError(WithKinds()(c)))
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(WithPackage("sqlkind"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, c.Output)

	_, err = NewConfig(WithPackage(""))
	assert.True(t, IsConfigError(err))
}

func TestApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(WithPackage(""), WithOutput(""), WithHeader("h"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Package"`)
	assert.Contains(t, err.Error(), `"Output"`)
	assert.Equal(t, "h", c.Header)
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("Package", "x-y", "package must be a Go identifier")
	assert.Equal(t, `kindgen: config error for "Package" (value: x-y): package must be a Go identifier`, err.Error())
	assert.ErrorIs(t, err, ErrMissingConfig)

	err = NewConfigError("Output", nil, "output path cannot be empty")
	assert.Equal(t, `kindgen: config error for "Output": output path cannot be empty`, err.Error())

	kerr := &KindError{Kind: "select", Message: "name must be exported"}
	assert.Equal(t, `kindgen: kind error on "select": name must be exported`, kerr.Error())
	assert.ErrorIs(t, kerr, ErrInvalidKind)
	assert.False(t, IsConfigError(kerr))
}
