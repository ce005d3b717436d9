package quiz

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

// Mode decides how Selector picks among the remaining candidates.
type Mode string

const (
	// ModeRandom picks uniformly at random.
	ModeRandom Mode = "random"
	// ModeFirst picks the candidate with the lowest id. Useful for reproducible demos.
	ModeFirst Mode = "first"
)

// ParseMode validates a configured selection mode. Empty means random.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case "", ModeRandom:
		return ModeRandom, nil
	case ModeFirst:
		return ModeFirst, nil
	default:
		return "", fmt.Errorf("unknown quiz selection mode %q", raw)
	}
}

// Selector picks the next quiz question from a candidate list ordered by id.
type Selector struct {
	mode Mode
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewSelector builds a selector. A nil rng uses the runtime's global source.
func NewSelector(mode Mode, rng *rand.Rand) *Selector {
	return &Selector{mode: mode, rng: rng}
}

// Pick returns one candidate, or false when there are none.
func (s *Selector) Pick(candidates []question.Question) (question.Question, bool) {
	if len(candidates) == 0 {
		return question.Question{}, false
	}
	if s.mode == ModeFirst {
		return candidates[0], true
	}
	return candidates[s.intN(len(candidates))], true
}

func (s *Selector) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	// *rand.Rand is not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
