package main

import (
	"github.com/McClain-Thiel/helix/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
