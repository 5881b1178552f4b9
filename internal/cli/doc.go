// Package cli implements the inspectgen command line:
//
//	inspectgen describe <Type> [--view ordered|grouped|alphabetical] [--dump]
//	inspectgen gen [Type...] [--out DIR] [--package NAME] [--stdout]
//	inspectgen ls [DIR] [--favorite]
//	inspectgen version
//
// Settings come from inspectgen.yaml in the working directory (or --config),
// INSPECTGEN_* environment variables and flags, in increasing precedence.
package cli
