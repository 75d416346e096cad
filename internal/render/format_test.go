package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber_Crores(t *testing.T) {
	assert.Equal(t, "1.00 Cr", FormatNumber(1e7))
	assert.Equal(t, "2.50 Cr", FormatNumber(2.5e7))
}

func TestFormatNumber_Lakhs(t *testing.T) {
	assert.Equal(t, "1.00 L", FormatNumber(1e5))
	assert.Equal(t, "9.99 L", FormatNumber(999000))
}

func TestFormatNumber_Thousands(t *testing.T) {
	assert.Equal(t, "1.0K", FormatNumber(1000))
	assert.Equal(t, "45.2K", FormatNumber(45200))
}

func TestFormatNumber_Small(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "42", FormatNumber(42.4))
}

func TestFormatNumber_NaN(t *testing.T) {
	assert.Equal(t, "--", FormatNumber(math.NaN()))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹1.00 Cr", FormatCurrency(1e7))
	assert.Equal(t, "₹500", FormatCurrency(500))
}

func TestFormatCrore(t *testing.T) {
	// Fixed crore unit regardless of magnitude.
	assert.Equal(t, "₹100.00 Cr", FormatCrore(1e9))
	assert.Equal(t, "₹0.05 Cr", FormatCrore(500000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "60.0%", FormatPercent(0.6))
	assert.Equal(t, "12.5%", FormatPercent(0.125))
}
