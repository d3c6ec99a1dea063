package socialverse

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Activity types pushed by Session operations.
const (
	ActivityUserAdd          = "USER_ADD"
	ActivityFriendAdd        = "FRIEND_ADD"
	ActivityFriendRemove     = "FRIEND_REMOVE"
	ActivityCommunityDetect  = "COMMUNITY_DETECT"
	ActivityPost             = "POST"
	ActivityPostDelete       = "POST_DELETE"
	ActivityPostUndo         = "POST_UNDO"
	ActivityPostRedo         = "POST_REDO"
	ActivityNotificationSent = "NOTIFICATION_SENT"
	ActivityNotificationRead = "NOTIFICATION_READ"
	ActivityTimeTravel       = "TIME_TRAVEL"
)

// NotificationFriendship is the type of the notification AddFriendship enqueues.
const NotificationFriendship = "FRIENDSHIP"

// SystemUser is the actor recorded for activities no user initiated.
const SystemUser = "0"

// Activity is one entry of the activity log.
type Activity struct {
	ID      uuid.UUID
	Type    string
	User    string
	Details string
	Time    time.Time
}

func (a Activity) String() string {
	return fmt.Sprintf("[%s] %s: %s", a.Type, a.User, a.Details)
}

// Notification is one entry of the notification queue.
type Notification struct {
	ID      uuid.UUID
	Type    string
	Sender  string
	Message string
	Time    time.Time
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] from %s: %s", n.Type, n.Sender, n.Message)
}

// excerpt shortens s to n runes, marking the cut with "...".
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n]) + "..."
}
