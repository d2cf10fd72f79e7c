package main

import (
	"github.com/luma/skiff/cmd"
)

func main() {
	cmd.Execute()
}
