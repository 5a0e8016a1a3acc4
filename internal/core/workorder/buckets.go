package workorder

import "github.com/example/gridboard/internal/models"

// Buckets is a stable partition of work orders by status.
type Buckets struct {
	InProgress []models.WorkOrder
	Pending    []models.WorkOrder
	Delayed    []models.WorkOrder
	Completed  []models.WorkOrder
	// Unknown holds orders whose status is outside the closed set. It is
	// empty for any collection that passed CheckIntegrity.
	Unknown []models.WorkOrder
}

// Bucket partitions orders by status, preserving source order within each bucket.
func Bucket(orders []models.WorkOrder) Buckets {
	var b Buckets
	for _, o := range orders {
		switch o.Status {
		case models.WorkInProgress:
			b.InProgress = append(b.InProgress, o)
		case models.WorkPending:
			b.Pending = append(b.Pending, o)
		case models.WorkDelayed:
			b.Delayed = append(b.Delayed, o)
		case models.WorkCompleted:
			b.Completed = append(b.Completed, o)
		default:
			b.Unknown = append(b.Unknown, o)
		}
	}
	return b
}

// For returns the bucket holding status.
func (b Buckets) For(status models.WorkStatus) []models.WorkOrder {
	switch status {
	case models.WorkInProgress:
		return b.InProgress
	case models.WorkPending:
		return b.Pending
	case models.WorkDelayed:
		return b.Delayed
	case models.WorkCompleted:
		return b.Completed
	}
	return b.Unknown
}

// Len returns the number of orders across all buckets.
func (b Buckets) Len() int {
	return len(b.InProgress) + len(b.Pending) + len(b.Delayed) + len(b.Completed) + len(b.Unknown)
}
