package model

import "time"

// OrderStatus describes fulfilment state shown in the order table.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusComplete   OrderStatus = "Complete"
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusApproved   OrderStatus = "Approved"
	OrderStatusRejected   OrderStatus = "Rejected"
)

// VisibleSelectionID addresses the visible page in selection routes and is
// never a valid order id.
const VisibleSelectionID = "visible"

// OrderStatuses lists known statuses in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusInProgress,
	OrderStatusComplete,
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusRejected,
}

// OrderOwner identifies the customer who placed an order.
type OrderOwner struct {
	Name   string
	Avatar string
}

// Order describes a single purchase record. Orders are never mutated after load.
type Order struct {
	ID      string
	User    OrderOwner
	Project string
	Address string
	Date    time.Time
	Status  OrderStatus
}
