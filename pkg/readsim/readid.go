// 19 Oct 2026

package readsim

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// alphanum is drawn from and then folded to lower case, so letters turn up
// twice as often as digits.
const alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var idGroups = [...]int{8, 4, 4, 4, 12}

const idLen = 8 + 4 + 4 + 4 + 12 + 4 // groups plus dashes

// lower is only given characters from alphanum
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ReadID returns something that looks like a nanopore read identifier,
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, lower case letters and digits.
// It takes 32 draws from rnd. Nobody checks for collisions.
func ReadID(rnd *rand.Rand) string {
	b := make([]byte, 0, idLen)
	for i, n := range idGroups {
		if i > 0 {
			b = append(b, '-')
		}
		for j := 0; j < n; j++ {
			b = append(b, lower(alphanum[rnd.IntN(len(alphanum))]))
		}
	}
	return string(b)
}

// rndReader lets uuid pull its bytes from our random source,
// so seeded runs stay reproducible.
type rndReader struct{ rnd *rand.Rand }

func (r rndReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.rnd.Uint64()
		for j := i; j < i+8 && j < len(p); j++ {
			p[j] = byte(v)
			v >>= 8
		}
	}
	return len(p), nil
}

// UUIDReadID returns a version 4 uuid built from rnd. Real basecallers
// use these, and the format is a subset of what ReadID makes.
func UUIDReadID(rnd *rand.Rand) string {
	u, err := uuid.NewRandomFromReader(rndReader{rnd})
	if err != nil { // rndReader never fails
		panic(err)
	}
	return u.String()
}
