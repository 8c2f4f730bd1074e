package notifier

import "time"

func (n *QueueNotifier) SetDrainTimeout(d time.Duration) {
	n.drainTimeout = d
}
