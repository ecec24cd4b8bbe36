// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// overlays flags on the HCL settings file and translates the result into
// the application's internal configuration.
package cli
