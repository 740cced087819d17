package gochart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter(t *testing.T) {
	f := newFormatter("en")
	assert.Equal(t, "1,234.5", f.Number(1234.5))
	assert.Equal(t, "0.33", f.Number(1.0/3))
	assert.Equal(t, "+50.0%", f.Percent(50))
	assert.Equal(t, "-12.3%", f.Percent(-12.345))
	assert.Equal(t, "0.0%", f.Percent(0))
	assert.Equal(t, "25%", f.Share(0.25))
}

func TestFormatterLocale(t *testing.T) {
	assert.Equal(t, "1.234,5", newFormatter("de").Number(1234.5))
	// Unparseable tags fall back to English.
	assert.Equal(t, "1,234.5", newFormatter("!!").Number(1234.5))
}
