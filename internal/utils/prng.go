// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard random generator so that every random decision
// in the app can run off one seedable source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{rng: rand.New(source)}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}
