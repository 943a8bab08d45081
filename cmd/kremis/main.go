package main

import "github.com/M2Dr3g0n/kremis/internal/cli"

func main() {
	cli.Execute()
}
