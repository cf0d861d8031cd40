package main

import "github.com/cse-motors/dealership/cmd"

func main() {
	cmd.Execute()
}
