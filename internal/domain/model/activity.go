package model

import "time"

// NotificationType classifies notification entries.
type NotificationType string

const (
	NotificationTypeBug          NotificationType = "bug"
	NotificationTypeUser         NotificationType = "user"
	NotificationTypeSubscription NotificationType = "subscription"
)

// Notification is a message shown in the navbar popover.
type Notification struct {
	ID        int64
	Type      NotificationType
	Message   string
	CreatedAt time.Time
}

// Activity records an action performed by a user.
type Activity struct {
	ID        int64
	UserID    int64
	Message   string
	CreatedAt time.Time
}

// ActivityEntry is an activity with the author's profile image.
type ActivityEntry struct {
	Activity
	Image string
}
