package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"local leading zero", "081234567890", "6281234567890"},
		{"international with plus", "+6281234567890", "6281234567890"},
		{"already normalized", "6281234567890", "6281234567890"},
		{"formatting stripped", "0812-3456 7890", "6281234567890"},
		{"parenthesized", "(0812) 3456-7890", "6281234567890"},
		{"foreign country code untouched", "33123456789", "33123456789"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.in))
		})
	}
}
