package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier prefixes per collection.
const (
	ProductIDPrefix  = "PROD"
	ScenarioIDPrefix = "REF"
)

// FormatID renders a sequence number as PREFIX-NNN.
// Example: FormatID("PROD", 7) == "PROD-007"
func FormatID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// ParseIDNumber returns the numeric suffix of an id of the form PREFIX-N.
func ParseIDNumber(prefix, id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// HighestIDNumber returns the largest suffix among ids carrying prefix, or 0.
func HighestIDNumber(prefix string, ids []string) int {
	highest := 0
	for _, id := range ids {
		if n, ok := ParseIDNumber(prefix, id); ok && n > highest {
			highest = n
		}
	}
	return highest
}
