package main

import "github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/cmd"

func main() {
	cmd.Execute()
}
