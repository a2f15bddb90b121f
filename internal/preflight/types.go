// Package preflight checks a Docusaurus project tree against the site record
// before the build runs: referenced files exist, internal links resolve and the
// git remote matches the deployment target.
package preflight

import (
	"fmt"
	"log/slog"

	"github.com/security-e/security-e.github.io/internal/foundation/errors"
	"github.com/security-e/security-e.github.io/internal/logfields"
)

// Severity indicates the importance of a finding.
type Severity int

const (
	// SeverityInfo is reported but never fails the check.
	SeverityInfo Severity = iota
	// SeverityWarning should be fixed but does not block the build.
	SeverityWarning
	// SeverityError will make the Docusaurus build fail.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Check names.
const (
	CheckFiles   = "files"
	CheckLinks   = "links"
	CheckGit     = "git-remote"
	CheckSidebar = "sidebar"
)

// Finding is a single pre-flight problem.
type Finding struct {
	Check    string
	Severity Severity
	Field    string // record field the finding is about, if any
	Target   string // path, route or remote URL
	Message  string
	Err      error // underlying classified error, if any
}

func (f Finding) String() string {
	if f.Field != "" {
		return fmt.Sprintf("%s [%s] %s: %s", f.Severity, f.Check, f.Field, f.Message)
	}
	return fmt.Sprintf("%s [%s] %s", f.Severity, f.Check, f.Message)
}

// Report collects the findings of one run.
type Report struct {
	Root     string
	Findings []Finding
}

func (r *Report) add(f Finding) { r.Findings = append(r.Findings, f) }

// HasErrors returns true if any error-level finding exists.
func (r *Report) HasErrors() bool { return r.ErrorCount() > 0 }

// ErrorCount returns the number of error-level findings.
func (r *Report) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level findings.
func (r *Report) WarningCount() int { return r.count(SeverityWarning) }

func (r *Report) count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Log writes every finding to logger at the matching level.
func (r *Report) Log(logger *slog.Logger) {
	for _, f := range r.Findings {
		attrs := []any{slog.String("check", f.Check), logfields.Target(f.Target)}
		if f.Field != "" {
			attrs = append(attrs, logfields.Field(f.Field))
		}
		if f.Err != nil {
			attrs = append(attrs, logfields.Error(f.Err))
		}
		switch f.Severity {
		case SeverityError:
			logger.Error(f.Message, attrs...)
		case SeverityWarning:
			logger.Warn(f.Message, attrs...)
		default:
			logger.Info(f.Message, attrs...)
		}
	}
}

// Err returns a build error when the report has error-level findings.
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	first := ""
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			first = f.String()
			break
		}
	}
	return errors.BuildError(fmt.Sprintf("pre-flight found %d error(s); first: %s", r.ErrorCount(), first)).
		WithContext("root", r.Root).
		WithContext("errors", r.ErrorCount()).
		WithContext("warnings", r.WarningCount()).
		Build()
}
