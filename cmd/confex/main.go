package main

import "confex/cmd/confex/cmd"

func main() {
	cmd.Execute()
}
