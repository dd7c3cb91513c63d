package main

import (
	"github.com/hmandava/career-compass/cmd"
)

func main() {
	cmd.Execute()
}
