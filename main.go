package main

import "github.com/bgraf/mdship/cmd"

func main() {
	cmd.Execute()
}
