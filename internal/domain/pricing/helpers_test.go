package pricing_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// assertDecimal compara por valor (110 == 110.00), no por representación interna.
func assertDecimal(t *testing.T, expected string, got decimal.Decimal, msg ...string) {
	t.Helper()
	detail := fmt.Sprintf("esperado %s, obtenido %s", expected, got.String())
	if len(msg) > 0 {
		detail += " (" + strings.Join(msg, " ") + ")"
	}
	assert.True(t, dec(expected).Equal(got), detail)
}

func nilDec() *decimal.Decimal { return nil }
