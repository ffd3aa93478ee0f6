package main

import "github.com/adrianmusante/sequential-datetime-prefix/internal/cli"

func main() {
	cli.Execute()
}
