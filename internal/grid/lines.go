package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line read by CleanLines.
const maxLineBytes = 1024 * 1024

// CleanLines reads r line by line, trims surrounding whitespace from every
// line and drops the lines left empty. The result is what Parse expects.
func CleanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineBytes)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	return lines, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func quoteByte(b byte) string {
	return strconv.QuoteRune(rune(b))
}
