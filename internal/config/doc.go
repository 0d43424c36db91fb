// Package config resolves generator settings. Defaults come from the embedded
// branding file, an optional YAML file passed with --config overrides them,
// and explicitly set command-line flags override both. The YAML file is
// validated against an embedded JSON schema before it is read.
package config
