package main

import "page-cache/internal/cli"

func main() {
	cli.Execute()
}
