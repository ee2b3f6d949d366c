// Package plugins defines the plugin capability set for package generation.
// Each plugin is keyed by Kind and may contribute extra generated files,
// README badge lines, and .gitignore patterns. A Set holds at most one
// plugin per kind and iterates in insertion order; README badges follow a
// fixed canonical priority ordering instead.
package plugins
