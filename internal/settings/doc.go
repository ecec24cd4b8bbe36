// Package settings loads the optional HCL settings file that carries
// per-machine defaults for the batch run: output directories, the credit
// target, the report format, and logging preferences. CLI flags always win
// over file values. Expressions in the file may reference process
// environment variables through the env object, e.g.
//
//	defaults {
//	  metrics_dir = "${env.HOME}/curricula/out"
//	}
package settings
