package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "Valid card number", number: "4539148803436467", valid: true},
		{name: "Single digit checksum", number: "0", valid: true},
		{name: "Invalid checksum", number: "4539148803436468", valid: false},
		{name: "Non-numeric input", number: "4539a48803436467", valid: false},
		{name: "Empty string", number: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsLuhn(tt.number))
		})
	}
}
