package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name written by `b2fa init`.
const DefaultFile = "b2fa.yaml"

// Classification modes for deciding whether a row is a debit or a credit.
const (
	ClassifyLiteral = "literal" // debit field must read exactly ZeroLiteral
	ClassifyNumeric = "numeric" // debit field must parse to zero
)

// Config represents the top-level b2fa.yaml configuration.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Amounts   AmountsConfig   `yaml:"amounts"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
}

// InputConfig describes the layout of the bank export.
type InputConfig struct {
	Delimiter     string  `yaml:"delimiter"`
	HeaderMarker  string  `yaml:"header_marker"`
	Columns       Columns `yaml:"columns"`
	DateSeparator string  `yaml:"date_separator"`
}

// Columns holds zero-based column indices into each transaction row.
type Columns struct {
	Date        int `yaml:"date"`
	Description int `yaml:"description"`
	Debit       int `yaml:"debit"`
	Credit      int `yaml:"credit"`
	Balance     int `yaml:"balance"`
}

// OutputConfig controls the converted file.
type OutputConfig struct {
	DateSeparator string `yaml:"date_separator"`
}

// AmountsConfig controls how debit and credit columns are merged.
type AmountsConfig struct {
	Classify    string `yaml:"classify"`     // "literal" or "numeric"
	ZeroLiteral string `yaml:"zero_literal"` // e.g. "0.00"
}

// ReconcileConfig controls the running-balance check.
type ReconcileConfig struct {
	Enabled        bool   `yaml:"enabled"`
	FailOnMismatch bool   `yaml:"fail_on_mismatch"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Width returns the minimum number of fields a transaction row needs.
func (c Columns) Width() int {
	w := 0
	for _, idx := range c.all() {
		if idx+1 > w {
			w = idx + 1
		}
	}
	return w
}

func (c Columns) all() []int {
	return []int{c.Date, c.Description, c.Debit, c.Credit, c.Balance}
}

// Comma returns the delimiter as a rune.
func (c InputConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Load reads a b2fa.yaml file from disk. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the layout of the supported bank export.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter:    ",",
			HeaderMarker: "Transaction Date",
			Columns: Columns{
				Date:        0,
				Description: 3,
				Debit:       4,
				Credit:      5,
				Balance:     6,
			},
			DateSeparator: "-",
		},
		Output: OutputConfig{
			DateSeparator: "/",
		},
		Amounts: AmountsConfig{
			Classify:    ClassifyLiteral,
			ZeroLiteral: "0.00",
		},
		Reconcile: ReconcileConfig{
			Enabled:        true,
			CurrencySymbol: "$",
		},
	}
}

// Validate checks that the config describes a usable layout.
func (c *Config) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter))
	} else if r := c.Input.Comma(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		errs = append(errs, fmt.Errorf("input.delimiter %q is not allowed", c.Input.Delimiter))
	}

	if c.Input.HeaderMarker == "" {
		errs = append(errs, errors.New("input.header_marker must not be empty"))
	}

	seen := make(map[int]bool)
	for _, idx := range c.Input.Columns.all() {
		if idx < 0 {
			errs = append(errs, fmt.Errorf("column index %d is negative", idx))
			continue
		}
		if seen[idx] {
			errs = append(errs, fmt.Errorf("column index %d is used twice", idx))
		}
		seen[idx] = true
	}

	switch c.Amounts.Classify {
	case ClassifyLiteral:
		if c.Amounts.ZeroLiteral == "" {
			errs = append(errs, errors.New("amounts.zero_literal must not be empty in literal mode"))
		}
	case ClassifyNumeric:
	default:
		errs = append(errs, fmt.Errorf("amounts.classify must be %q or %q, got %q", ClassifyLiteral, ClassifyNumeric, c.Amounts.Classify))
	}

	return errors.Join(errs...)
}
