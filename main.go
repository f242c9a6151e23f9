package main

import "seplanner/cmd"

func main() {
	cmd.Execute()
}
