// Package jobs provides scheduled background tasks for the order lifecycle
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutoAdvanceJob - periodically walks every processing order one state
// forward on behalf of a system registrar, simulating the back-office
// pipeline in deployments without human registrars.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(autoAdvanceJob, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed advance of one order is logged and does not stop the sweep;
// terminal orders reached mid-sweep are skipped on the next run because they
// no longer match the processing filter.
package jobs
