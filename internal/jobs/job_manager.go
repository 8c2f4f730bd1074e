package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleShipmentSweepJob *StaleShipmentSweepJob
}

func NewJobManager(staleShipmentSweepJob *StaleShipmentSweepJob) *JobManager {
	return &JobManager{staleShipmentSweepJob: staleShipmentSweepJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleShipmentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale shipment sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleShipmentSweepJob.Stop()
}
