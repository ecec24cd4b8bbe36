// Package curriculum holds the data model for a single curriculum plan and
// the CSV reader/loader that materializes it. A plan is one input file's
// worth of courses plus its metadata block; courses are stored under
// collision-free storage keys assigned by the three-pass loader.
package curriculum
