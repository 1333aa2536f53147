package main

import "github.com/bigproj-build/bigproj/cmd"

func main() {
	cmd.Execute()
}
