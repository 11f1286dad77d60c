package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// In is where prompts read from.
var In io.Reader = os.Stdin

var inReader *bufio.Reader

// AskString prompts the user for a line of input. ok is false once the
// input is exhausted.
func AskString(prompt string) (line string, ok bool) {
	_, _ = fmt.Fprintf(Out, "  %s ", prompt)

	if inReader == nil {
		inReader = bufio.NewReader(In)
	}
	response, err := inReader.ReadString('\n')
	if err != nil && response == "" {
		return "", false
	}
	return strings.TrimSpace(response), true
}

// resetInput drops buffered input so In can be swapped.
func resetInput() {
	inReader = nil
}
