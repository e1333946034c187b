package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"regular", []byte("s3cr3t")},
		{"empty", []byte{}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			WipeByteArray(tt.in)
			for _, b := range tt.in {
				assert.Equal(t, byte(0), b)
			}
		})
	}
}
