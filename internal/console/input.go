package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine trims the trailing newline and surrounding whitespace. A final
// unterminated line still counts; only a truly empty read reports EOF.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt re-prompts until it gets a parseable integer. Exhausted input is
// the only way out without a value.
func readInt(in *bufio.Reader, out io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := readLine(in)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("Please enter a number."))
			continue
		}
		return n, nil
	}
}
