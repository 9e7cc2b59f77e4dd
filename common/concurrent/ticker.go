package concurrent

import (
	"context"
	"time"
)

// RunTickerLoop calls onTick every interval until ctx is done.
// The first call happens after one interval has elapsed.
func RunTickerLoop(ctx context.Context, interval time.Duration, onTick func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick(ctx)
		}
	}
}
