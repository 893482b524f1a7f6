package service

import "fmt"

// CodeInsufficientCapacity is the machine-readable rejection code returned
// when a shop has no free capacity.
const CodeInsufficientCapacity = "insufficient_capacity"

// Fixed texts of the capacity rejection, surfaced verbatim to API clients.
const (
	CapacityExceededTitle  = "Please select another shop."
	CapacityExceededDetail = "The store does not have enough capacity."
)

// ShopNotFoundError reports a lookup against a shop id that does not exist.
// It is terminal: the caller gets a not-found response and nothing is retried.
type ShopNotFoundError struct {
	ShopID int64
}

func (e *ShopNotFoundError) Error() string {
	return fmt.Sprintf("could not find shop %d", e.ShopID)
}

// CapacityExceededError reports an admission rejected because the shop is
// full. No store state changes when it is returned.
type CapacityExceededError struct {
	ShopID    int64
	Capacity  int64
	Occupancy int64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("shop %d is full: capacity %d, occupancy %d", e.ShopID, e.Capacity, e.Occupancy)
}

func (e *CapacityExceededError) Code() string {
	return CodeInsufficientCapacity
}
