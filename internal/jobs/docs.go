// Package jobs runs the periodic payment maintenance of the marketplace on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. EscrowReleaseJob releases payments that have sat in escrow longer than
//     the hold period and marks their orders paid.
//  2. PaymentExpiryJob fails intents left in processing past the intent TTL.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(autoReleaseHandler, expireHandler, jobs.Schedules{
//		EscrowRelease:    "0 0 * * * *",
//		EscrowHoldPeriod: 7 * 24 * time.Hour,
//		PaymentExpiry:    "0 */15 * * * *",
//		PaymentIntentTTL: 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Specs carry a leading seconds field. Escrow release commits each payment in
// its own unit of work, so one failure leaves the rest of the batch applied.
// Expiry runs as one transaction. Either job logs its error and retries on
// the next tick.
package jobs
