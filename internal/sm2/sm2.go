// Package sm2 implements the simplified SM-2 scheduling transition.
//
// Update is a pure state transition: given the same card, score, and time it
// always produces the same result, and it never touches storage.
package sm2

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/supercore/words/internal/domain"
)

// Sentinel errors for the sm2 package.
// Use errors.Is to check: errors.Is(err, sm2.ErrInvalidScore)
var (
	ErrInvalidScore     = errors.New("sm2: performance score out of range")
	ErrClockUnavailable = errors.New("sm2: current time unavailable")
)

// MinEaseFactor is the floor below which a card's ease factor never drops.
const MinEaseFactor = 1.3

const secondsPerDay = 86400

// Update applies one review with the given performance score (0-5) at the
// given time and returns the rescheduled card. The input card is not mutated.
//
// Score 0 is a total lapse: the interval resets to one day and the
// repetition streak to zero. Score 1 is a weak recall: the interval resets
// but the streak survives. Scores 2-5 are successful recalls: the interval
// steps through 1 and 6 days for the first two successes and then grows by
// the ease factor.
//
// A zero time is rejected with ErrClockUnavailable rather than scheduling
// the card at the epoch, which would make it permanently due.
func Update(card domain.Card, performance int, now time.Time) (domain.Card, error) {
	if performance < 0 || performance > 5 {
		return card, fmt.Errorf("%w: %d", ErrInvalidScore, performance)
	}
	if now.IsZero() {
		return card, ErrClockUnavailable
	}

	c := card
	switch {
	case performance == 0:
		c.Interval = 1
		c.Repetitions = 0
	case performance == 1:
		c.Interval = 1
	default:
		switch c.Repetitions {
		case 0:
			c.Interval = 1
		case 1:
			c.Interval = 6
		default:
			c.Interval = int(math.Round(float64(c.Interval) * c.EaseFactor))
		}
		c.Repetitions++
	}

	// The adjustment reads the pre-update ease factor and the same score
	// that drove the interval branch: 5 raises it by 0.1, 0 lowers it by
	// 0.3 before the floor.
	c.EaseFactor = math.Max(MinEaseFactor, card.EaseFactor+0.1-float64(5-performance)*0.08)

	c.NextReview = now.Unix() + int64(c.Interval)*secondsPerDay
	return c, nil
}
