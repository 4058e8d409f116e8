package client

import (
	"sync"
	"time"
)

// Countdown ticks down once per interval and fires onExpire when it reaches
// zero. Stop cancels the ticking goroutine; it is safe to call more than
// once, and expiry and Stop never both run the callback.
type Countdown struct {
	mu        sync.Mutex
	remaining int

	interval time.Duration
	onExpire func()
	stop     chan struct{}
	stopOnce sync.Once
}

func NewCountdown(seconds int, interval time.Duration, onExpire func()) *Countdown {
	return &Countdown{
		remaining: seconds,
		interval:  interval,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

func (c *Countdown) Start() {
	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			c.remaining--
			expired := c.remaining <= 0
			c.mu.Unlock()

			if expired {
				fired := false
				c.stopOnce.Do(func() {
					close(c.stop)
					fired = true
				})
				if fired && c.onExpire != nil {
					c.onExpire()
				}
				return
			}
		}
	}
}

// Stop cancels the countdown without firing onExpire.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining < 0 {
		return 0
	}
	return c.remaining
}
