package systz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTZ(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Europe/Paris", "Europe/Paris", true},
		{" Europe/Paris ", "Europe/Paris", true},
		{"eUROpe/paris", "Europe/Paris", true},
		{"\tamerica/new_york\n", "America/New_York", true},
		{"UTC", "UTC", true},
		{"Etc/UTC", "Etc/UTC", true},
		{"", "", false},
		{"   ", "", false},
		{"Local", "", false},
		{"Not/AZone", "", false},
		{"Europe", "", false},
	}
	for _, c := range cases {
		got, ok := parseTZ(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParseTZMemoized(t *testing.T) {
	first, ok := parseTZ("eUROpe/paris")
	assert.True(t, ok)
	second, ok := parseTZ("eUROpe/paris")
	assert.True(t, ok)
	assert.Equal(t, first, second)
}
