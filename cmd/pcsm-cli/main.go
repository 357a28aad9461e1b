package main

import "pcsm/cmd/pcsm-cli/cmd"

func main() {
	cmd.Execute()
}
