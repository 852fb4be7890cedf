// Package notify is the transient notification feed (toasts) shown by the UI.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/azaliaz/ruboni/internal/logger"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

const defaultCapacity = 50

type Notice struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Feed keeps the most recent notices until the UI drains them.
type Feed struct {
	mu      sync.Mutex
	notices []Notice
	limit   int
	now     func() time.Time
}

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = defaultCapacity
	}
	return &Feed{limit: limit, now: time.Now}
}

func (f *Feed) Success(msg string) { f.push(LevelSuccess, msg) }
func (f *Feed) Error(msg string)   { f.push(LevelError, msg) }
func (f *Feed) Info(msg string)    { f.push(LevelInfo, msg) }

func (f *Feed) push(level Level, msg string) {
	log := logger.Get()
	n := Notice{
		ID:      uuid.New().String(),
		Level:   level,
		Message: msg,
		At:      f.now(),
	}

	f.mu.Lock()
	f.notices = append(f.notices, n)
	if over := len(f.notices) - f.limit; over > 0 {
		f.notices = append([]Notice(nil), f.notices[over:]...)
	}
	f.mu.Unlock()

	switch level {
	case LevelError:
		log.Warn().Str("notice", msg).Msg("error notice")
	default:
		log.Debug().Str("level", string(level)).Str("notice", msg).Msg("notice")
	}
}

// Drain returns pending notices oldest first and empties the feed.
func (f *Feed) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.notices
	f.notices = nil
	if out == nil {
		return []Notice{}
	}
	return out
}

// Peek returns pending notices without removing them.
func (f *Feed) Peek() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notice{}, f.notices...)
}
