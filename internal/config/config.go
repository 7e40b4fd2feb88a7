// Package config holds the command-line configuration of enigma.
package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config collects every option of every command. Each command validates
// only the fields it uses.
type Config struct {
	// Common flags
	Verbose bool
	Quiet   bool
	Show    bool `yaml:"-"`

	// Hashing
	Algorithm string `validate:"algorithm"`
	Parallel  int    `validate:"min=1"`
	Stats     bool
	Output    string

	// File selection when digesting directories
	Include     []string `yaml:",omitempty"`
	Skip        []string `yaml:",omitempty"`
	IncludeFrom []string `mapstructure:"include-from" yaml:"include-from,omitempty"`
	SkipFrom    []string `mapstructure:"skip-from"    yaml:"skip-from,omitempty"`

	// Classical ciphers
	Shift   int
	Keyword string `validate:"required,alpha"`
	Rails   int    `validate:"min=2"`

	// AES
	Key            string `validate:"required"                                  yaml:"-"`
	IV             string `validate:"required"`
	SIVKey         string `mapstructure:"siv-key"         validate:"required,len=128" yaml:"-"`
	AssociatedData string `mapstructure:"associated-data"`

	// RSA
	Bits       int    `validate:"min=1024"`
	KeyDir     string `mapstructure:"out"         validate:"required"                                        yaml:"out"`
	PublicKey  string `mapstructure:"public-key"  validate:"required_without=PrivateKey,exclusive=PrivateKey" yaml:"public-key"`
	PrivateKey string `mapstructure:"private-key" validate:"required_without=PublicKey"                         yaml:"-"`
	OAEP       bool

	// Salt
	Length  int    `validate:"min=0"`
	Charset string `validate:"charset"`
	Min     int
	Max     int
	Start   int
	End     int
	Exclude []int

	// Snowflake
	Worker     int64 `validate:"min=0,max=31"`
	Datacenter int64 `validate:"min=0,max=31"`
	Count      int   `validate:"min=1"`

	// Positional arguments
	Args []string `validate:"min=1" yaml:"args,omitempty"`
}

// Validate checks the named fields against their struct tags.
// With no names, no field is checked.
func (c *Config) Validate(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.StructPartial(c, fields...); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

//nolint:gochecknoglobals // validators cache struct metadata and are safe for concurrent use
var newValidator = sync.OnceValues(func() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := register(validate); err != nil {
		return nil, err
	}

	return validate, nil
})
