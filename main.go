package main

import "github.com/calebk/congresspanel/cmd"

func main() {
	cmd.Execute()
}
