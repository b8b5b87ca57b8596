package service

// Hooks for the external service_test package.

var MapSubscriptionStatus = mapSubscriptionStatus

// QueuedJobs reports how many dispatch jobs are waiting in the queue.
func (s *DispatchService) QueuedJobs() int {
	return len(s.jobs)
}
