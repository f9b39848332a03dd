package main

import (
	"github.com/jaredallen/cycliccode/cmd"
)

func main() {
	cmd.Execute()
}
