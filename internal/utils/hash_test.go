package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashContent_MatchesPlainSHA256(t *testing.T) {
	source := "util.log('hello');"

	want := sha256.Sum256([]byte(source))
	assert.Equal(t, hex.EncodeToString(want[:]), HashContent(source))
}

func TestHashContent_Stable(t *testing.T) {
	// Cached fingerprints outlive the process; the digest of a fixed
	// input must never change.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashContent(""))

	first := HashContent("var x = 1;")
	second := HashContent("var x = 1;")
	assert.Equal(t, first, second)
}

func TestHashContent_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, HashContent("a"), HashContent("b"))
}

func TestHashContent_ConcurrentUse(t *testing.T) {
	// The pooled hasher must not leak state between goroutines.
	want := HashContent("concurrent source")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.Equal(t, want, HashContent("concurrent source"))
		}()
	}
	wg.Wait()
}
