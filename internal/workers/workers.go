package workers

// Workers starts a fixed set of background workers together. The studio
// currently runs only the cache sweeper, but the grouping keeps startup
// uniform as workers are added.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run launches every worker. Workers manage their own goroutines, so Run
// returns immediately.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
