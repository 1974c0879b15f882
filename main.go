package main

import "github.com/entity53/SerpentAI/cmd"

func main() {
	cmd.Execute()
}
