package main

import (
	"github.com/mj1618/openwindows/cmd"
	_ "github.com/mj1618/openwindows/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
