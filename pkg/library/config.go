package library

import "errors"

// Config holds the tunable circulation parameters. Loan periods and borrowing
// limits are kind/role constants, not configuration.
type Config struct {
	LibraryName   string  `json:"library_name" yaml:"library_name"`
	DailyFineRate float64 `json:"daily_fine_rate" yaml:"daily_fine_rate"`
	FineThreshold float64 `json:"fine_threshold" yaml:"fine_threshold"`
}

// Config validation errors.
var (
	ErrNegativeFineRate  = errors.New("daily fine rate must not be negative")
	ErrNegativeThreshold = errors.New("fine threshold must not be negative")
)

// DefaultConfig returns the standard circulation parameters.
func DefaultConfig() Config {
	return Config{
		LibraryName:   "City Library",
		DailyFineRate: DefaultDailyFineRate,
		FineThreshold: DefaultFineThreshold,
	}
}

// Validate checks that the Config is well-formed. Zero-value fields are
// filled with defaults by NewSystem, so only negatives are rejected here.
func (c Config) Validate() error {
	if c.DailyFineRate < 0 {
		return ErrNegativeFineRate
	}
	if c.FineThreshold < 0 {
		return ErrNegativeThreshold
	}
	return nil
}
