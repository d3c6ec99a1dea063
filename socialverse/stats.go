package socialverse

import "github.com/katalvlaran/socialverse/graph"

// Stats summarizes every structure of a session.
type Stats struct {
	GraphVersion  int
	GraphVersions int
	Users         int
	Friendships   int
	Communities   int

	FeedVersion int
	FeedLength  int

	ActivityVersion int
	Activities      int

	NotificationVersion  int
	Notifications        int
	NotificationRebuilds int

	IndexedUsers int
	IndexHeight  int
}

// Stats collects a summary without recording any activity.
func (s *Session) Stats() Stats {
	snap := s.graph.Current()
	st := Stats{
		GraphVersion:         snap.Version(),
		GraphVersions:        s.graph.Ledger().Len(),
		Users:                snap.UserCount(),
		Friendships:          snap.FriendshipCount(),
		Communities:          len(graph.Communities(snap)),
		FeedVersion:          s.posts.Latest(),
		FeedLength:           len(s.Feed()),
		ActivityVersion:      s.activities.Version(),
		Activities:           s.activities.Size(s.activities.Version()),
		NotificationVersion:  s.notifications.Version(),
		Notifications:        s.notifications.Size(s.notifications.Version()),
		NotificationRebuilds: s.notifications.Rebuilds(),
	}
	s.idxMu.RLock()
	st.IndexedUsers = s.index.Len()
	st.IndexHeight = s.index.Height()
	s.idxMu.RUnlock()

	return st
}
