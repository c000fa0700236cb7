package topping

import (
	"strconv"
	"strings"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func splitLines(s string) []string {
	return strings.Fields(strings.TrimSpace(s))
}
