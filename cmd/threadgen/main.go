package main

import "Threads/internal/cli"

func main() {
	cli.Execute()
}
