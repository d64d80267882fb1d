// Package main is the entry point for the cutgen CLI.
package main

import "cutgen.dev/pkg/cutgen/cmd"

func main() {
	cmd.Execute()
}
