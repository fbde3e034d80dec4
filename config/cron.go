package config

import (
	"storefront.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"importwatch": {Schedule: "@every 5m", Job: jobs.ImportWatchJob},
	// Add more jobs here
}
