package pkg

import (
	"fmt"
	"math"
	"strings"
)

// FormatBRL formata um valor monetário na convenção pt-BR: símbolo R$,
// ponto como separador de milhar e vírgula decimal, sempre com dois
// decimais. Ex.: 1234.5 -> "R$ 1.234,56" para 1234.56.
func FormatBRL(amount float64) string {
	negative := math.Signbit(amount) && amount != 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	intPart := cents / 100
	fracPart := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), fracPart)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatDateBR formata uma data para exibição na convenção pt-BR
// (dia/mês/ano). O formato de armazenamento permanece ISO.
func FormatDateBR(d Date) string {
	if d.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}
