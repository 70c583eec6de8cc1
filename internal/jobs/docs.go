// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is ReconciliationJob, which periodically sweeps the
// document store and repairs vessel-cargo pairs left in disagreement by a
// failed second write. The store offers no cross-record transactions, so the
// sweep is what bounds how long the two sides of an association can diverge.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the reconciliation job entirely, which is the
// right setting for tests and for deployments that run the sweep out of band.
package jobs
