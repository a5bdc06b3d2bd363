package main

import "vexa/internal/cli"

func main() {
	cli.Execute()
}
