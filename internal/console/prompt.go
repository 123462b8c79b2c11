package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPromptExited means the user typed the EXIT sentinel at the file prompt.
var ErrPromptExited = errors.New("file prompt exited")

// PromptForDataFile loops until it gets a plausible data file path: a
// space-free name ending in .txt. EXIT (any case) bails out.
func PromptForDataFile(in *bufio.Reader, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "Please enter file path: ")
		path, err := readLine(in)
		if err != nil {
			return "", err
		}
		if strings.EqualFold(path, "exit") {
			return "", ErrPromptExited
		}
		if len(path) >= 4 && strings.HasSuffix(path, ".txt") && !strings.Contains(path, " ") {
			return path, nil
		}
		fmt.Fprintln(out, errorStyle.Render("Please enter a valid filepath"))
	}
}
