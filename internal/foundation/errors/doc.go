// Package errors provides the classified error primitives used across localsite.
//
// Every error that crosses a package boundary towards the CLI or the HTTP
// service is a ClassifiedError, built with the fluent ErrorBuilder:
//
//	err := errors.ValidationError("missing required fields").
//		WithContext("fields", []string{"name", "phone"}).
//		Build()
//
// The CLI and HTTP adapters turn a category into an exit code or a status
// code and render a user-facing message.
package errors
