package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	runsStarted     uint64
	runsFailed      uint64
	rowsProcessed   uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordRun(rows int, failed bool) {
	atomic.AddUint64(&c.runsStarted, 1)
	if failed {
		atomic.AddUint64(&c.runsFailed, 1)
	}
	if rows > 0 {
		atomic.AddUint64(&c.rowsProcessed, uint64(rows))
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":      total,
		"errorsTotal":        errs,
		"runsTotal":          atomic.LoadUint64(&c.runsStarted),
		"runsFailedTotal":    atomic.LoadUint64(&c.runsFailed),
		"rowsProcessedTotal": atomic.LoadUint64(&c.rowsProcessed),
		"avgDurationMs":      avg,
		"totalDurationMs":    totalMs,
	}
}
