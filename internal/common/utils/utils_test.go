// Package utils helper unit tests
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 535, time.Local)
	d := DateOnly(ts)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestToday(t *testing.T) {
	today := Today()
	now := time.Now()
	assert.Equal(t, now.Day(), today.Day())
	assert.Equal(t, 0, today.Hour())
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("owner@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.domain.in"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("9876543210"))
	assert.False(t, ValidatePhone("1234567890"))
	assert.False(t, ValidatePhone("98765"))
	assert.False(t, ValidatePhone("98765432109"))
}
