package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tty-pick/internal/format/table"
	"github.com/atomicstack/tty-pick/internal/selector"
)

const maxLineBytes = 1 << 20

// ReadItems turns each non-blank input line into an item whose value is the
// line itself. With a delimiter the fields are aligned into columns for the
// label.
func ReadItems(r io.Reader, delimiter string) ([]selector.Item[string], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	labels := lines
	if delimiter != "" {
		labels = table.Format(table.Split(lines, delimiter), nil)
	}
	items := make([]selector.Item[string], len(lines))
	for i, line := range lines {
		items[i] = selector.Item[string]{Label: labels[i], Value: line}
	}
	return items, nil
}
