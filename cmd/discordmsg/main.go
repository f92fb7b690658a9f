// Command discordmsg validates YAML message definitions against Discord's limits
// and optionally posts them to a channel.
//
// Usage:
//
//	discordmsg validate release.yaml
//	discordmsg send --config config.yaml --channel 123456789012345678 release.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
