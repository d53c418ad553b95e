package bookingid

import (
	"context"
	"crypto/rand"
	"fmt"
)

const (
	prefix   = "BK-"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffix   = 6

	maxAttempts = 5
)

// Taken reports whether an id is already in use. The allocator checks
// before handing an id out, so the ~1/36^6 random collision can never
// reach the store.
type Taken func(ctx context.Context, id string) (bool, error)

type Allocator struct {
	taken Taken
}

func New(taken Taken) *Allocator {
	return &Allocator{taken: taken}
}

// Next returns an unused booking id of the form BK-XXXXXX.
func (a *Allocator) Next(ctx context.Context) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id, err := random()
		if err != nil {
			return "", err
		}

		exists, err := a.taken(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check booking id: %w", err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("no free booking id after %d attempts", maxAttempts)
}

// Largest multiple of len(alphabet) that fits a byte; values at or
// above it are rejected so every character is equally likely.
const rejectAbove = 256 - 256%len(alphabet)

func random() (string, error) {
	out := make([]byte, 0, suffix)
	buf := make([]byte, 2*suffix)
	for len(out) < suffix {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == suffix {
				break
			}
		}
	}
	return prefix + string(out), nil
}
