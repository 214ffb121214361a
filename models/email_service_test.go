package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "120.00", formatINR(120))
	assert.Equal(t, "40.25", formatINR(40.25))
	assert.Equal(t, "1,234,567.50", formatINR(1234567.5))
	assert.Equal(t, "0.99", formatINR(0.99))
}
