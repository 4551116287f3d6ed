package main

import (
	"fmt"
	"os"

	"passguard/cmd/passguard"
)

func main() {
	if err := passguard.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
