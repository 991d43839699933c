package config

import "time"

// Throttle bounds job dispatch for one queue: at most Max deliveries per
// WindowMs. The coordinator may tighten these dynamically under quota
// pressure.
type Throttle struct {
	Max      int   `yaml:"max"`
	WindowMs int64 `yaml:"window_ms"`
}

// Window returns the throttle window as a duration.
func (t Throttle) Window() time.Duration {
	return time.Duration(t.WindowMs) * time.Millisecond
}

// QueueConfig contains worker pool and dispatch configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// Workers is the number of worker goroutines per queue. Queues absent
	// from the map fall back to DefaultWorkers.
	Workers map[string]int `yaml:"workers"`

	// DefaultWorkers is used for queues without an explicit worker count.
	DefaultWorkers int `yaml:"default_workers"`

	// Throttles overrides the compile-time per-queue dispatch throttles.
	Throttles map[string]Throttle `yaml:"throttles"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often an active job's heartbeat is renewed.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned jobs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned and redelivered.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// MaxStalled is how many orphan redeliveries one job may survive
	// before it is failed outright.
	MaxStalled int `yaml:"max_stalled"`

	// SchedulerInterval is how often due repeatable jobs are enqueued.
	SchedulerInterval time.Duration `yaml:"scheduler_interval"`
}

// Queue names. One worker pool is bound to each.
const (
	QueueChannelDiscovery  = "channel-discovery"
	QueueContentMetadata   = "content-metadata"
	QueueContentProcessing = "content-processing"
	QueueSegmentAnalysis   = "segment-analysis"
	QueueCombination       = "combination"
	QueueStats             = "stats"
	QueueQuotaCleanup      = "quota-cleanup"
)

// AllQueues lists every queue the process serves.
func AllQueues() []string {
	return []string{
		QueueChannelDiscovery,
		QueueContentMetadata,
		QueueContentProcessing,
		QueueSegmentAnalysis,
		QueueCombination,
		QueueStats,
		QueueQuotaCleanup,
	}
}

// DefaultQueueConfig returns the built-in queue defaults. The AI-bound
// queues get conservative throttles; bookkeeping queues run looser.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Workers: map[string]int{
			QueueSegmentAnalysis: 4,
			QueueCombination:     2,
			QueueQuotaCleanup:    1,
			QueueStats:           1,
		},
		DefaultWorkers: 2,
		Throttles: map[string]Throttle{
			QueueChannelDiscovery:  {Max: 30, WindowMs: 60_000},
			QueueContentMetadata:   {Max: 30, WindowMs: 60_000},
			QueueContentProcessing: {Max: 60, WindowMs: 60_000},
			QueueSegmentAnalysis:   {Max: 8, WindowMs: 60_000},
			QueueCombination:       {Max: 4, WindowMs: 60_000},
			QueueStats:             {Max: 30, WindowMs: 60_000},
			QueueQuotaCleanup:      {Max: 2, WindowMs: 60_000},
		},
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MaxStalled:              2,
		SchedulerInterval:       15 * time.Second,
	}
}

// WorkersFor returns the worker count for a queue, falling back to
// DefaultWorkers.
func (c *QueueConfig) WorkersFor(queue string) int {
	if n, ok := c.Workers[queue]; ok && n > 0 {
		return n
	}
	return c.DefaultWorkers
}

// ThrottleFor returns the dispatch throttle for a queue. Unknown queues
// get a conservative default.
func (c *QueueConfig) ThrottleFor(queue string) Throttle {
	if t, ok := c.Throttles[queue]; ok && t.Max > 0 && t.WindowMs > 0 {
		return t
	}
	return Throttle{Max: 10, WindowMs: 60_000}
}
