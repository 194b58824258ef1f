package main

import "usagemark/cmd"

func main() {
	cmd.Execute()
}
