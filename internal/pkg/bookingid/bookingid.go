// Package bookingid produces the human-readable booking identifiers shown to
// customers and operators. They are labels, not keys: uniqueness is likely but
// never checked against the store.
package bookingid

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomLength = 6
)

type Generator struct {
	now  func() time.Time
	intN func(n int) int
}

func New() *Generator {
	return &Generator{now: time.Now, intN: rand.IntN}
}

// NewWithSource is used by tests to pin the clock and the random source.
func NewWithSource(now func() time.Time, intN func(n int) int) *Generator {
	return &Generator{now: now, intN: intN}
}

// Generate returns {TAG}-{epoch millis in base 36}-{6 random base-36 chars}, uppercased.
func (g *Generator) Generate(tag string) string {
	var b strings.Builder
	b.Grow(len(tag) + 16)
	b.WriteString(tag)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 36))
	b.WriteByte('-')
	for i := 0; i < randomLength; i++ {
		b.WriteByte(alphabet[g.intN(len(alphabet))])
	}
	return strings.ToUpper(b.String())
}

var defaultGenerator = New()

func Generate(tag string) string {
	return defaultGenerator.Generate(tag)
}
