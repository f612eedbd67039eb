package transportwatcher

import (
	"context"
	"log"
	"time"
)

// RunScheduledUpdates refreshes the weighted graph once immediately and
// then on every tick until ctx is cancelled. A failed update keeps the
// previous snapshot and retries on the next tick.
func RunScheduledUpdates(ctx context.Context, svc *GraphService, interval time.Duration) {
	if interval <= 0 {
		log.Printf("scheduled updates disabled")
		return
	}
	update := func() {
		if err := svc.UpdateWeightedGraph(ctx); err != nil {
			log.Printf("scheduled weight update failed: %v", err)
		}
	}
	update()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("scheduled updates stopped")
			return
		case <-ticker.C:
			update()
		}
	}
}
