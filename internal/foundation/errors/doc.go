// Package errors provides the classified error type used across siteconfig.
//
// A ClassifiedError carries a category (config, validation, filesystem, ...),
// a severity and a retry strategy together with structured context. Errors are
// built through the fluent ErrorBuilder:
//
//	err := errors.ConfigError("overrides file unreadable").
//		WithContext("path", path).
//		Build()
//
// The CLI adapter maps categories to process exit codes and decides how much of
// the error chain is shown to the user.
package errors
