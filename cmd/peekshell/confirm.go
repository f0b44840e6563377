/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// confirmFunc asks before destructive operations. Replaced in tests.
var confirmFunc = confirm

// confirm prints prompt to out and reads a yes/no answer from in.
// In CI it answers yes without asking.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	if os.Getenv("CI") != "" {
		return true
	}
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
