package main

import "csvqc/cmd"

func main() {
	cmd.Execute()
}
