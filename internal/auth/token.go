package auth

import (
	"fmt"
	"math/rand"
)

var (
	tokenAdjectives = []string{"swift", "quick", "fast", "rapid", "speedy", "turbo", "flash", "sonic", "jet", "rocket"}
	tokenNouns      = []string{"typer", "keys", "finger", "dash", "bolt", "zoom", "rush", "speed", "flow", "type"}
)

const maxTokenNumber = 9999

// TokenGenerator produces sign-in tokens such as "swiftkeys42".
type TokenGenerator struct {
	rnd *rand.Rand
}

// NewTokenGenerator returns a generator backed by rnd.
func NewTokenGenerator(rnd *rand.Rand) *TokenGenerator {
	return &TokenGenerator{rnd: rnd}
}

// Generate returns one token. Uniqueness is checked by the caller.
func (g *TokenGenerator) Generate() string {
	adjective := tokenAdjectives[g.rnd.Intn(len(tokenAdjectives))]
	noun := tokenNouns[g.rnd.Intn(len(tokenNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, g.rnd.Intn(maxTokenNumber)+1)
}
