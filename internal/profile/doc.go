// Package profile loads declarative generation templates from YAML files
// and validates them against an embedded JSON schema before converting
// them into scaffold templates.
package profile
