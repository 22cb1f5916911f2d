// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file, loaded into the process environment
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied after merging; the legacy SUPABASE_URL, SUPABASE_KEY
// and PORT variables fill in anything still unset. The main entry point is
// [GetStructuredConfig].
package config
