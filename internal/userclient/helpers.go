package userclient

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  register")
	fmt.Fprintln(out, "  login")
	fmt.Fprintln(out, "  quizzes")
	fmt.Fprintln(out, "  take <quiz_id>")
	fmt.Fprintln(out, "  results")
	fmt.Fprintln(out, "  ask <question text>")
	fmt.Fprintln(out, "  exit")
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptChoice reads a 1-based option number, retrying up to maxInvalid times.
func promptChoice(reader *bufio.Reader, out io.Writer, optionCount, maxInvalid int) (int, bool) {
	if optionCount < 1 {
		return 0, false
	}

	for attempt := 0; attempt < maxInvalid; attempt++ {
		fmt.Fprintf(out, "Your answer (1-%d): ", optionCount)

		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= optionCount {
			return choice, true
		}

		if attempt < maxInvalid-1 {
			fmt.Fprintf(out, "Invalid input. Attempts remaining: %d\n", maxInvalid-attempt-1)
		}
	}

	return 0, false
}

func describeClientError(err error, serverURL string) error {
	if errors.Is(err, ErrServiceUnavailable) {
		return fmt.Errorf("quiz service unavailable at %s", serverURL)
	}
	return err
}
