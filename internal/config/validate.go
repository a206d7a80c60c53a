package config

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnsupportedVersion indicates a config schema newer than this build.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrEmptyValue indicates a required field was set to an empty string.
	ErrEmptyValue = errors.New("must not be empty")

	// ErrNegativeRetention indicates a retention count below zero.
	ErrNegativeRetention = errors.New("retention must not be negative")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	} else if cfg.Version > CurrentVersion {
		errs = append(errs, &VersionError{Version: cfg.Version, Err: ErrUnsupportedVersion})
	}

	// Vendor and game name empty strings would collapse the save path
	// onto the vendor root, so reject them early.
	if cfg.Vendor == "" {
		errs = append(errs, &FieldError{Field: "vendor", Err: ErrEmptyValue})
	}
	if cfg.Game == "" {
		errs = append(errs, &FieldError{Field: "game", Err: ErrEmptyValue})
	}

	// Retention 0 disables pruning; negative counts are meaningless.
	if cfg.Retention < 0 {
		errs = append(errs, &FieldError{Field: "retention", Err: ErrNegativeRetention})
	}

	// Validate directory paths if set
	if cfg.AppDataDir != "" {
		if err := validatePath(cfg.AppDataDir); err != nil {
			errs = append(errs, &PathError{
				Field: "app_data_dir",
				Path:  cfg.AppDataDir,
				Err:   err,
			})
		}
	}

	if cfg.LogFile != "" {
		if err := validatePath(cfg.LogFile); err != nil {
			errs = append(errs, &PathError{
				Field: "log_file",
				Path:  cfg.LogFile,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// VersionError represents an error for an unusable schema version.
type VersionError struct {
	Version int
	Err     error
}

func (e *VersionError) Error() string {
	return e.Err.Error() + ": " + strconv.Itoa(e.Version)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// FieldError represents an error for a specific scalar field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
