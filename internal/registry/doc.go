// Package registry defines the closed set of supported AI assistant profiles
// and script variants. Profiles are loaded from an embedded YAML file that is
// validated against an embedded JSON schema at first use, so a bad registry
// edit fails every command immediately instead of producing a half-broken
// scaffold.
package registry
