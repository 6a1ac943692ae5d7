// Package common contains small helpers shared across client components.
package common

// WipeByteArray zeroes sensitive data (passwords) once it is no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
