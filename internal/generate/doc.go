// Package generate is the publish orchestrator. It stages a new package
// in an isolated temporary directory, drives repository setup and the file
// generators in a fixed order, commits everything, and relocates the
// finished package to its destination — falling back to a backup location
// when the final move fails.
package generate
