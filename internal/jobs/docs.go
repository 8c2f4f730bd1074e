// Package jobs runs the scheduled background work of the storefront service
// using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StaleShipmentSweepJob delivers, on behalf of the system, every order that has
// been in Shipping for longer than the configured number of days. The schedule
// comes from SWEEP_SCHEDULE and accepts six-field cron expressions as well as
// descriptors such as "@every 1h".
//
// # Usage
//
//	sweepJob := jobs.NewStaleShipmentSweepJob(&sweepHandler, cfg.SweepSchedule, logger)
//	jobManager := jobs.NewJobManager(sweepJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick runs again. Orders that failed in
// one run are still Shipping and are retried by the next one.
package jobs
