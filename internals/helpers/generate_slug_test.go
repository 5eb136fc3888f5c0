package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pemilihan Raya 2026", "pemilihan-raya-2026"},
		{"  Sosialisasi   PEMIRA!!  ", "sosialisasi-pemira"},
		{"Hasil & Evaluasi", "hasil-evaluasi"},
		{"---", ""},
		{"BEM2026", "bem2026"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}
