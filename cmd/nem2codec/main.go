package main

import "github.com/nemtech/nem2-e2e-tests/internal/cli"

func main() {
	cli.Execute()
}
