// Package main hosts the marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree collects raw text from flags and arguments,
// hands it to the catalog package for validation, and renders the resulting
// movie lists as tables or JSON. Configuration resolution, the catalog lock,
// and logger setup live in the command context so subcommands only deal with
// input and output.
package main
