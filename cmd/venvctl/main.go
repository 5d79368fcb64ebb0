package main

import "venvctl/internal/cli"

func main() {
	cli.Execute()
}
