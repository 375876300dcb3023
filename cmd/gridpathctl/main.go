// Command gridpathctl drives the gridpath search engine from the command
// line: validate and load a terrain pack, run a single search against it,
// and report the wire-compatible version the core implements.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
