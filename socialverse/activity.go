package socialverse

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogActivity pushes an activity record and returns the new activity version.
// typ is stored upper-cased.
func (s *Session) LogActivity(typ, user, details string) int {
	a := Activity{
		ID:      uuid.New(),
		Type:    strings.ToUpper(strings.TrimSpace(typ)),
		User:    user,
		Details: details,
		Time:    s.now(),
	}
	v := s.activities.Push(a)
	s.published(structureActivity, "log_activity", v, zap.String("type", a.Type), zap.String("user", user))

	return v
}

// PopActivity removes and returns the newest activity. ok is false on an
// empty log; no version is created then.
func (s *Session) PopActivity() (Activity, bool) {
	const op = "pop_activity"
	a, ok := s.activities.Pop()
	if !ok {
		s.empty(structureActivity, op)
		return a, false
	}
	s.published(structureActivity, op, s.activities.Version(), zap.Stringer("id", a.ID))

	return a, true
}

// Activities returns the current activity log, newest first.
func (s *Session) Activities() []Activity { return s.activities.All() }

// ActivitiesAt returns the activity log of version, newest first.
func (s *Session) ActivitiesAt(version int) ([]Activity, bool) { return s.activities.At(version) }

// Notify enqueues a notification and returns the new notification version.
// typ is stored upper-cased.
func (s *Session) Notify(typ, sender, message string) int {
	n := Notification{
		ID:      uuid.New(),
		Type:    strings.ToUpper(strings.TrimSpace(typ)),
		Sender:  sender,
		Message: message,
		Time:    s.now(),
	}
	v := s.notifications.Enqueue(n)
	s.published(structureNotification, "notify", v, zap.String("type", n.Type), zap.String("sender", sender))
	s.record(ActivityNotificationSent, sender, "Sent notif: '"+excerpt(message, 15)+"'")

	return v
}

// ReadNotification removes and returns the oldest notification. ok is false
// when the queue is empty; no version is created then.
func (s *Session) ReadNotification() (Notification, bool) {
	const op = "read_notification"
	n, ok := s.notifications.Dequeue()
	if !ok {
		s.empty(structureNotification, op)
		return n, false
	}
	s.published(structureNotification, op, s.notifications.Version(), zap.Stringer("id", n.ID))
	s.record(ActivityNotificationRead, n.Sender, "Read notif: '"+excerpt(n.Message, 15)+"'")

	return n, true
}

// Notifications returns the pending notifications, oldest first.
func (s *Session) Notifications() []Notification { return s.notifications.All() }

// NotificationsAt returns the notifications of version, oldest first.
func (s *Session) NotificationsAt(version int) ([]Notification, bool) {
	return s.notifications.At(version)
}
