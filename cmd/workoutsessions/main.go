package main

import "github.com/adibhanna/workoutsessions/internal/cli"

func main() {
	cli.Execute()
}
