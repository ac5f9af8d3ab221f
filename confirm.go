package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ConfirmResult is how a yes/no prompt ended.
type ConfirmResult int

const (
	Confirmed ConfirmResult = iota
	Cancelled
	ConfirmTimeout
)

func (r ConfirmResult) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	case ConfirmTimeout:
		return "timeout"
	}
	return "unknown"
}

// Callback data prefixes for the confirm and cancel buttons.
const (
	confirmPrefix = "confirm:"
	cancelPrefix  = "cancel:"
)

type pendingConfirm struct {
	userID   int64
	answered bool
	answers  chan bool
}

// confirmations tracks prompts waiting for a button press. Only the user
// who triggered a prompt can answer it.
type confirmations struct {
	mu      sync.Mutex
	pending map[string]*pendingConfirm
}

func newConfirmations() *confirmations {
	return &confirmations{pending: make(map[string]*pendingConfirm)}
}

// open registers a prompt for userID and returns its token.
func (c *confirmations) open(userID int64) string {
	token := uuid.NewString()
	c.mu.Lock()
	c.pending[token] = &pendingConfirm{userID: userID, answers: make(chan bool, 1)}
	c.mu.Unlock()
	return token
}

// answer delivers a button press. It reports false if the token is
// unknown, already answered, or belongs to another user.
func (c *confirmations) answer(data string, userID int64) bool {
	var token string
	var yes bool
	switch {
	case strings.HasPrefix(data, confirmPrefix):
		token, yes = strings.TrimPrefix(data, confirmPrefix), true
	case strings.HasPrefix(data, cancelPrefix):
		token = strings.TrimPrefix(data, cancelPrefix)
	default:
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pending[token]
	if !ok || p.answered || p.userID != userID {
		return false
	}
	p.answered = true
	p.answers <- yes
	return true
}

// await blocks until the prompt is answered, the timeout passes, or ctx
// ends. The prompt is closed either way.
func (c *confirmations) await(ctx context.Context, token string, timeout time.Duration) ConfirmResult {
	c.mu.Lock()
	p, ok := c.pending[token]
	c.mu.Unlock()
	if !ok {
		return Cancelled
	}
	defer func() {
		c.mu.Lock()
		delete(c.pending, token)
		c.mu.Unlock()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case yes := <-p.answers:
		if yes {
			return Confirmed
		}
		return Cancelled
	case <-timer.C:
		return ConfirmTimeout
	case <-ctx.Done():
		return Cancelled
	}
}

// discard drops a prompt that was never shown.
func (c *confirmations) discard(token string) {
	c.mu.Lock()
	delete(c.pending, token)
	c.mu.Unlock()
}
