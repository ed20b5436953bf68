// Package errors provides structured, actionable errors for the website
// CLI and its configuration.
//
// Each error carries a code registered in this package, a category, a
// short message, and optionally a detail paragraph and a hint:
//
//	err := errors.New("W001").
//	    WithDetail(`address "localhost" has no port`).
//	    WithSuggestion("Set WEBSITE_ADDR to host:port, e.g. :8080")
//
//	errors.PrintError(os.Stderr, err)
//	// ERROR W001: Invalid listen address
//	//
//	//   address "localhost" has no port
//	//
//	//   Hint: Set WEBSITE_ADDR to host:port, e.g. :8080
//
// Codes are grouped by range: W001-W019 configuration, W020-W039 export
// and publishing, W040-W059 runtime.
package errors
