package render

import (
	"context"
	"sync/atomic"
	"time"
)

// clockLayout mirrors the dashboard header's short date-time display.
const clockLayout = "Mon, 2 Jan 2006, 03:04 PM"

// Clock maintains the dashboard's displayed timestamp. A background ticker
// refreshes it on a fixed interval, independent of the render pipeline; the
// two share nothing beyond an atomic value, so the refresh can never race a
// render session.
type Clock struct {
	now     func() time.Time
	current atomic.Value // string
}

// NewClock creates a Clock stamped with the current time.
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.refresh()
	return c
}

func (c *Clock) refresh() {
	c.current.Store(c.now().Format(clockLayout))
}

// Now returns the most recently formatted timestamp.
func (c *Clock) Now() string {
	return c.current.Load().(string)
}

// Start refreshes the displayed timestamp every interval until ctx is done.
func (c *Clock) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refresh()
			}
		}
	}()
}
