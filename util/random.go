package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between lo and hi
func RandomInt(lo, hi int64) int64 {
	return lo + rand.Int64N(hi-lo+1)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for range n {
		sb.WriteByte(alphabet[rand.IntN(k)])
	}

	return sb.String()
}
