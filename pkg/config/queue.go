package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tasks are handed off, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// It is a hard ceiling on concurrent CLI subprocesses.
	WorkerCount int `yaml:"worker_count"`

	// Capacity is the buffered size of the in-memory task queue.
	// Push blocks once the queue is full (back-pressure on producers).
	Capacity int `yaml:"capacity"`

	// PopTimeout is how long a worker blocks waiting for a task id
	// before re-checking the store for stranded queued tasks.
	PopTimeout time.Duration `yaml:"pop_timeout"`

	// TaskTimeout is the maximum time a single CLI invocation may run.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to complete during shutdown. Should match TaskTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// SweepInterval is how often to scan for tasks stuck in running
	// with no output activity (worker lost).
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// WorkerLossThreshold is how long a running task can go without
	// output activity before the sweep reclaims it as failed.
	WorkerLossThreshold time.Duration `yaml:"worker_loss_threshold"`

	// OutputFlushChunks is the max number of chunks buffered before a
	// periodic AppendOutputChunk write to the store.
	OutputFlushChunks int `yaml:"output_flush_chunks"`

	// OutputFlushInterval is the max time between store flushes of
	// buffered output, whichever of chunks/interval comes first.
	OutputFlushInterval time.Duration `yaml:"output_flush_interval"`

	// FinalizeRetries bounds retries of terminal store writes on
	// transient backend errors (exponential backoff between attempts).
	FinalizeRetries int `yaml:"finalize_retries"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		Capacity:                1024,
		PopTimeout:              5 * time.Second,
		TaskTimeout:             10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		SweepInterval:           5 * time.Minute,
		WorkerLossThreshold:     30 * time.Minute,
		OutputFlushChunks:       20,
		OutputFlushInterval:     2 * time.Second,
		FinalizeRetries:         3,
	}
}
