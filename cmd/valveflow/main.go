// Command valveflow reads a valve network description and prints the best
// pressure release for one agent and for two cooperating agents.
//
//	valveflow solve input.txt
//	valveflow --config run.yaml < input.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
