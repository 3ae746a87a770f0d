package main

import "github.com/joern1811/wachatview/internal/cmd"

func main() {
	cmd.Execute()
}
