// Command tandupscan is the CLI driver for the tandem-duplication scoring
// engine. It is a non-core, external collaborator: it builds
// engine.RunConfig values from flags and writes results through
// record.WriteText, but performs no domain validation of its own.
package main

import "github.com/katalvlaran/tandupscan/cmd/tandupscan/commands"

func main() {
	commands.Execute()
}
