package doctor

import (
	"testing"
	"time"
)

// stubCheck is a canned Check for exercising the runner.
type stubCheck struct {
	name     string
	category string
	result   *CheckResult
}

func (c *stubCheck) Name() string      { return c.name }
func (c *stubCheck) Category() string  { return c.category }
func (c *stubCheck) Run() *CheckResult { return c.result }

func TestNewRunner(t *testing.T) {
	r := NewRunner()
	if r == nil {
		t.Fatal("NewRunner returned nil")
	}
	if len(r.checks) != 0 {
		t.Errorf("NewRunner().checks = %d, want 0", len(r.checks))
	}
}

func TestRunner_AddCheck(t *testing.T) {
	t.Run("single check", func(t *testing.T) {
		r := NewRunner()
		r.AddCheck(&stubCheck{name: "test-1"})

		if len(r.checks) != 1 {
			t.Errorf("AddCheck: checks count = %d, want 1", len(r.checks))
		}
		if r.checks[0].Name() != "test-1" {
			t.Errorf("AddCheck: check name = %q, want %q", r.checks[0].Name(), "test-1")
		}
	})

	t.Run("multiple checks", func(t *testing.T) {
		r := NewRunner()

		for range 3 {
			r.AddCheck(&stubCheck{})
		}

		if len(r.checks) != 3 {
			t.Errorf("AddCheck: checks count = %d, want 3", len(r.checks))
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		r := NewRunner()
		names := []string{"first", "second", "third"}

		for _, name := range names {
			r.AddCheck(&stubCheck{name: name})
		}

		for i, want := range names {
			if r.checks[i].Name() != want {
				t.Errorf("AddCheck order: checks[%d].Name() = %q, want %q", i, r.checks[i].Name(), want)
			}
		}
	})
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name            string
		results         []*CheckResult
		wantResultCount int
		wantPassed      int
		wantInfo        int
		wantWarnings    int
		wantErrors      int
	}{
		{
			name:            "empty runner",
			results:         nil,
			wantResultCount: 0,
		},
		{
			name: "single pass",
			results: []*CheckResult{
				{Status: SeverityPass},
			},
			wantResultCount: 1,
			wantPassed:      1,
		},
		{
			name: "single info",
			results: []*CheckResult{
				{Status: SeverityInfo},
			},
			wantResultCount: 1,
			wantInfo:        1,
		},
		{
			name: "single warning",
			results: []*CheckResult{
				{Status: SeverityWarning},
			},
			wantResultCount: 1,
			wantWarnings:    1,
		},
		{
			name: "single error",
			results: []*CheckResult{
				{Status: SeverityError},
			},
			wantResultCount: 1,
			wantErrors:      1,
		},
		{
			name: "mixed severities",
			results: []*CheckResult{
				{Status: SeverityPass},
				{Status: SeverityPass},
				{Status: SeverityInfo},
				{Status: SeverityWarning},
				{Status: SeverityWarning},
				{Status: SeverityError},
			},
			wantResultCount: 6,
			wantPassed:      2,
			wantInfo:        1,
			wantWarnings:    2,
			wantErrors:      1,
		},
		{
			name: "all pass",
			results: []*CheckResult{
				{Status: SeverityPass},
				{Status: SeverityPass},
				{Status: SeverityPass},
			},
			wantResultCount: 3,
			wantPassed:      3,
		},
		{
			name: "all errors",
			results: []*CheckResult{
				{Status: SeverityError},
				{Status: SeverityError},
			},
			wantResultCount: 2,
			wantErrors:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner()
			for _, result := range tt.results {
				r.AddCheck(&stubCheck{result: result})
			}

			before := time.Now().UTC()
			report := r.Run()
			after := time.Now().UTC()

			// Verify timestamp is recent and between before and after
			if report.Timestamp.Before(before) || report.Timestamp.After(after) {
				t.Errorf("Timestamp %v not in expected range [%v, %v]",
					report.Timestamp, before, after)
			}

			// Verify results count
			if len(report.Results) != tt.wantResultCount {
				t.Errorf("Results count = %d, want %d", len(report.Results), tt.wantResultCount)
			}

			// Verify summary counts
			if report.Summary.Passed != tt.wantPassed {
				t.Errorf("Summary.Passed = %d, want %d", report.Summary.Passed, tt.wantPassed)
			}
			if report.Summary.Info != tt.wantInfo {
				t.Errorf("Summary.Info = %d, want %d", report.Summary.Info, tt.wantInfo)
			}
			if report.Summary.Warnings != tt.wantWarnings {
				t.Errorf("Summary.Warnings = %d, want %d", report.Summary.Warnings, tt.wantWarnings)
			}
			if report.Summary.Errors != tt.wantErrors {
				t.Errorf("Summary.Errors = %d, want %d", report.Summary.Errors, tt.wantErrors)
			}
		})
	}
}

func TestRunner_Run_ResultsOrder(t *testing.T) {
	r := NewRunner()
	names := []string{"first", "second", "third"}
	statuses := []Severity{SeverityPass, SeverityWarning, SeverityError}

	for i, name := range names {
		r.AddCheck(&stubCheck{name: name, result: &CheckResult{Name: name, Status: statuses[i]}})
	}

	report := r.Run()

	// Results should be in the same order as checks were added
	for i, want := range names {
		if report.Results[i].Name != want {
			t.Errorf("Results[%d].Name = %q, want %q", i, report.Results[i].Name, want)
		}
	}
}

func TestReport_HasErrors(t *testing.T) {
	tests := []struct {
		name   string
		errors int
		want   bool
	}{
		{"no errors", 0, false},
		{"one error", 1, true},
		{"multiple errors", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Summary: Summary{Errors: tt.errors}}
			if got := r.HasErrors(); got != tt.want {
				t.Errorf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport_HasWarnings(t *testing.T) {
	tests := []struct {
		name     string
		warnings int
		want     bool
	}{
		{"no warnings", 0, false},
		{"one warning", 1, true},
		{"multiple warnings", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Summary: Summary{Warnings: tt.warnings}}
			if got := r.HasWarnings(); got != tt.want {
				t.Errorf("HasWarnings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport_HasErrors_IndependentOfWarnings(t *testing.T) {
	// Verify HasErrors only checks errors, not warnings
	r := &Report{Summary: Summary{Warnings: 10, Errors: 0}}
	if r.HasErrors() {
		t.Error("HasErrors() = true when only warnings present, want false")
	}

	r = &Report{Summary: Summary{Warnings: 10, Errors: 1}}
	if !r.HasErrors() {
		t.Error("HasErrors() = false when errors present, want true")
	}
}

func TestReport_ZeroValue(t *testing.T) {
	// Test that zero-value report behaves correctly
	var r Report

	if r.HasErrors() {
		t.Error("zero-value HasErrors() = true, want false")
	}
	if r.HasWarnings() {
		t.Error("zero-value HasWarnings() = true, want false")
	}
	if r.Timestamp != (time.Time{}) {
		t.Error("zero-value Timestamp should be zero time")
	}
	if r.Results != nil {
		t.Error("zero-value Results should be nil")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
