// Package main provides the buckets CLI.
package main

import "github.com/mesh-intelligence/buckets/internal/cli"

func main() {
	cli.Execute()
}
