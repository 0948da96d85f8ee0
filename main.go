// Package main is the entry point for the flreduce CLI.
package main

import "flreduce.dev/pkg/flreduce/cmd"

func main() {
	cmd.Execute()
}
