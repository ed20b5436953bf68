package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Configuration (W001-W019)

	"W001": {
		Category:   CategoryConfig,
		Message:    "Invalid listen address",
		Suggestion: "Set WEBSITE_ADDR to host:port, e.g. :8080",
	},
	"W002": {
		Category:   CategoryConfig,
		Message:    "Unknown log level",
		Suggestion: "Use one of debug, info, warn, error",
	},
	"W003": {
		Category:   CategoryConfig,
		Message:    "Unknown log format",
		Suggestion: "Use text or json",
	},
	"W004": {
		Category:   CategoryConfig,
		Message:    "Invalid large breakpoint",
		Suggestion: "WEBSITE_LARGE_BREAKPOINT is a width in pixels greater than zero",
	},
	"W005": {
		Category:   CategoryConfig,
		Message:    "Incomplete search configuration",
		Suggestion: "Set both ALGOLIA_API_KEY and ALGOLIA_INDEX_NAME, or neither",
	},
	"W006": {
		Category:   CategoryConfig,
		Message:    "Unsupported default locale",
		Suggestion: "Use one of the locales shipped with the site",
	},
	"W007": {
		Category:   CategoryConfig,
		Message:    "Could not parse environment",
		Suggestion: "Check the WEBSITE_* variables for typos in numbers and booleans",
	},

	// Export and publishing (W020-W039)

	"W020": {
		Category:   CategoryCLI,
		Message:    "No export destination",
		Suggestion: "Pass --out DIR or --bucket NAME",
	},
	"W021": {
		Category:   CategoryCLI,
		Message:    "Conflicting export destinations",
		Suggestion: "Pass only one of --out and --bucket",
	},
	"W022": {
		Category: CategoryPublish,
		Message:  "Page render failed",
	},
	"W023": {
		Category:   CategoryPublish,
		Message:    "Could not write file",
		Suggestion: "Check that the output directory is writable",
	},
	"W024": {
		Category:   CategoryPublish,
		Message:    "Upload failed",
		Suggestion: "Check the AWS credentials and that the bucket exists",
	},

	// Runtime (W040-W059)

	"W040": {
		Category: CategoryRuntime,
		Message:  "Could not load site content",
	},
	"W041": {
		Category:   CategoryRuntime,
		Message:    "Server failed",
		Suggestion: "Check that the address is free",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
