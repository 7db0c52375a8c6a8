package main

import "github.com/celo-tools/celophane/cmd"

func main() {
	cmd.Execute()
}
