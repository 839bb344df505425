// Package jobs provides scheduled background tasks for the order tracking
// system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(waitingHandler, uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// KitchenReportJob runs at the top of every minute and logs the number of
// waiting orders together with the preparation slot occupancy. The report is
// purely observational; it never mutates orders.
package jobs
