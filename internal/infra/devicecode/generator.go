// Package devicecode issues the short numeric codes devices display during
// pairing.
package devicecode

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/ogarmar/Compa/internal/domain/service"
)

type generator struct {
	length      int
	maxAttempts int
	now         func() time.Time
}

// NewGenerator creates a code generator producing codes of the given digit
// length, drawing at most maxAttempts random candidates before falling back
// to a time-derived value.
func NewGenerator(length, maxAttempts int) service.CodeService {
	return &generator{
		length:      length,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// GenerateCode produces a fixed-length numeric code not present in existing.
// Pure function of its inputs apart from randomness and the clock fallback.
func (g *generator) GenerateCode(existing map[string]struct{}) string {
	bound := pow10(g.length)

	for range g.maxAttempts {
		n, err := rand.Int(rand.Reader, big.NewInt(bound))
		if err != nil {
			break
		}
		code := leftPad(n.Int64(), g.length)
		if _, taken := existing[code]; !taken {
			return code
		}
	}

	// All draws collided (or the randomness source failed): derive a code
	// from the clock instead of failing the caller. Collisions are possible
	// here but vanishingly unlikely at realistic device counts.
	return leftPad(g.now().UnixNano()%bound, g.length)
}

func pow10(n int) int64 {
	result := int64(1)
	for range n {
		result *= 10
	}

	return result
}

func leftPad(n int64, width int) string {
	code := strconv.FormatInt(n, 10)
	for len(code) < width {
		code = "0" + code
	}

	return code
}
