// Package config loads the website configuration from the environment.
//
// Every setting has a default, so an empty environment serves the site on
// :8080 in English with live navigation enabled and search disabled.
//
//	WEBSITE_ADDR=:8080
//	WEBSITE_LOG_LEVEL=info          # debug, info, warn, error
//	WEBSITE_LOG_FORMAT=text         # text, json
//	WEBSITE_LARGE_BREAKPOINT=1024   # px
//	WEBSITE_DEFAULT_LOCALE=en
//	WEBSITE_LIVE=true               # false renders static navigation
//	USE_PREFETCH=false
//	ALGOLIA_API_KEY=...
//	ALGOLIA_INDEX_NAME=...
//	WEBSITE_S3_BUCKET=...           # export target when --bucket is not given
//	WEBSITE_S3_PREFIX=...
//
// Command-line flags override the environment.
package config
