package main

import "github.com/CristiGvl/picoTherm/cmd"

func main() {
	cmd.Execute()
}
