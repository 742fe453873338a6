package ratelimit

import (
	"fmt"
	"sync"
	"time"

	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]
	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}
	if c.count >= l.max {
		return false
	}
	c.count++
	return true
}

// Remaining returns the number of remaining requests for the given key
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, exists := l.counters[key]
	if !exists || l.now().After(c.expiresAt) {
		return l.max
	}
	return max(l.max-c.count, 0)
}

// Reset forgets the counter of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.counters, key)
	l.mu.Unlock()
}

// Prune removes expired counters and returns how many were dropped.
func (l *Limiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for key, c := range l.counters {
		if now.After(c.expiresAt) {
			delete(l.counters, key)
			n++
		}
	}
	return n
}

// LoginConfig sets attempt budgets for admin logins.
type LoginConfig struct {
	Window      time.Duration `mapstructure:"window"`
	PerIP       int           `mapstructure:"per_ip"`
	PerUsername int           `mapstructure:"per_username"`
}

// LoginLimiter throttles login attempts per client IP and per username.
type LoginLimiter struct {
	ip       *Limiter
	username *Limiter
	stop     chan struct{}
	once     sync.Once
}

// NewLoginLimiter returns a limiter with defaults for unset fields and starts pruning expired counters.
func NewLoginLimiter(c LoginConfig) *LoginLimiter {
	if c.Window <= 0 {
		c.Window = 15 * time.Minute
	}
	if c.PerIP <= 0 {
		c.PerIP = 20
	}
	if c.PerUsername <= 0 {
		c.PerUsername = 5
	}
	l := &LoginLimiter{
		ip:       NewLimiter(c.Window, c.PerIP),
		username: NewLimiter(c.Window, c.PerUsername),
		stop:     make(chan struct{}),
	}
	go l.prune(time.Minute)
	return l
}

// CheckLogin counts one attempt and fails once either budget is spent.
func (l *LoginLimiter) CheckLogin(ip, username string) error {
	if !l.ip.Allow(ip) {
		return fmt.Errorf("too many login attempts from this IP address: %w", gerr.ErrTooManyRequests)
	}
	if username != "" && !l.username.Allow(username) {
		return fmt.Errorf("too many login attempts for this user: %w", gerr.ErrTooManyRequests)
	}
	return nil
}

// Succeeded clears the username budget after a valid login.
func (l *LoginLimiter) Succeeded(username string) {
	l.username.Reset(username)
}

// Stop ends the pruning goroutine.
func (l *LoginLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *LoginLimiter) prune(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.ip.Prune()
			l.username.Prune()
		case <-l.stop:
			return
		}
	}
}
