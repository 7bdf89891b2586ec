// Package config provides configuration loading, merging, and validation
// facilities for the notepad server.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is never overridden):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults fill whatever is left empty. The entry point is
// [GetStructuredConfig].
package config
