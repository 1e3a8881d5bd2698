package main

import (
	"github.com/JibranRasheed/CSMSL/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
