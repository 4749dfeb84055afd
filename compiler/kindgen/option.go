package kindgen

import (
	"errors"
	"go/token"
)

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the name of the generated package.
func WithPackage(name string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(name) {
			return NewConfigError("Package", name, "package must be a Go identifier")
		}
		c.Package = name
		return nil
	}
}

// WithOutput sets the path of the generated file.
func WithOutput(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Output", nil, "output path cannot be empty")
		}
		c.Output = path
		return nil
	}
}

// WithHeader sets the comment placed above the package clause.
// An empty header falls back to DefaultHeader.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithKinds appends kinds to generate.
func WithKinds(kinds ...KindSpec) Option {
	return func(c *Config) error {
		if len(kinds) == 0 {
			return NewConfigError("Kinds", nil, "at least one kind is required")
		}
		c.Kinds = append(c.Kinds, kinds...)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Output: DefaultOutput}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
