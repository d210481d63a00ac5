package main

import "tempo/cmd/tempo-cli/cmd"

func main() {
	cmd.Execute()
}
