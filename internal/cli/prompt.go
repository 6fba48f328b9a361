// Package cli implements the waypoint command set. Commands are thin
// translators: flags in, wire-provided services, formatted output.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirmPrompt asks a yes/no question on stdin, defaulting to no.
func confirmPrompt(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
