// Package app wires the analysis pipeline into a batch run: it owns the
// configured logger, expands the input paths, drives each curriculum file
// through load → graph → metrics → schedule → report, and prints the batch
// outcome. Each file is independent; a failed file is reported and skipped
// without stopping the batch.
package app
