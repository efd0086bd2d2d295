package tasks

// TaskSchedulerInterface defines the interface for task scheduling
// operations: queue management and worker pool control.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
