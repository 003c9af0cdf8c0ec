// Package plan implements the plan command, a dry run of init-sln --cpm
// that prints the manifest it would write and every project file change.
package plan
