package main

import "fretdrill/cmd"

func main() {
	cmd.Execute()
}
