package main

import "github.com/crimescope/crimescope/cmd"

func main() {
	cmd.Execute()
}
