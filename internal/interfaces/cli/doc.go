// Package cli implements the fixtures command-line interface.
//
// The command builds one fixture board through the use case layer and prints
// it as text or JSON. A provider failure prints the same "Error API: ..."
// banner the web page shows and exits with ExitError.
package cli
