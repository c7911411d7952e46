package internal

import (
	"strings"
)

func TrimLines(s string) string {
	trimmed := strings.ReplaceAll(s, "\r", "")
	trimmed = strings.ReplaceAll(trimmed, "\n", "")
	trimmed = strings.ReplaceAll(trimmed, "\t", " ")
	trimmed = strings.TrimSpace(trimmed)
	return trimmed
}
