// Command agora runs the association platform API server.
package main

import (
	"os"

	"agora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
