package main

import "minter/cmd"

func main() {
	cmd.Execute()
}
