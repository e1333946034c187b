// Package common holds small helpers shared across userdesk components.
package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to clear passwords and other secrets from memory as soon as they are
// no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
