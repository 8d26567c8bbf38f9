package main

import "github.com/fatih/color"

// Sprint color functions for text output.
var (
	bold      = color.New(color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
	boldGreen = color.New(color.Bold, color.FgGreen).SprintFunc()
	boldRed   = color.New(color.Bold, color.FgRed).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
	cyan      = color.New(color.FgCyan).SprintFunc()
)

// statusText colors a status word by outcome.
func statusText(ok bool, s string) string {
	if ok {
		return boldGreen(s)
	}

	return boldRed(s)
}
