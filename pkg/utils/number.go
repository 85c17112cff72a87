package utils

import (
	"strconv"
	"strings"
)

// PositiveIntOrDefault converte s para inteiro e usa def quando o valor
// não é numérico ou não é positivo
func PositiveIntOrDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}

	return n
}
