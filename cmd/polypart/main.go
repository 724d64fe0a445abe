package main

import "github.com/arl/go-polypart/cmd/polypart/cmd"

func main() {
	cmd.Execute()
}
