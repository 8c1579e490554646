package reservation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^RES-\d{5}$`)

	for i := 0; i < 10000; i++ {
		code := GenerateCode()
		require.NotEmpty(t, code)
		require.Regexp(t, pattern, code)
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"RES-00000", true},
		{"RES-12345", true},
		{"RES-99999", true},
		{"RES-1234", false},
		{"RES-123456", false},
		{"RES-abcde", false},
		{"res-12345", false},
		{"12345", false},
		{"", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ValidCode(tt.code), "code %q", tt.code)
	}
}
