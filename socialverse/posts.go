package socialverse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialverse/feed"
)

// postExcerpt is how many runes of a post activity details quote.
const postExcerpt = 20

// AddPost prepends content to the latest feed version and returns the new version.
//
// Errors:
//   - ErrEmptyContent if content is blank after trimming.
//   - ErrPostTooLong if content exceeds Config.MaxPostLength runes.
func (s *Session) AddPost(content string) (int, error) {
	const op = "add_post"
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, s.violation(op, ErrEmptyContent)
	}
	if n := utf8.RuneCountInString(content); n > s.cfg.MaxPostLength {
		return 0, s.violation(op, fmt.Errorf("%w: %d runes, limit %d", ErrPostTooLong, n, s.cfg.MaxPostLength))
	}

	v := s.posts.Append(content)
	s.published(structureFeed, op, v)
	s.record(ActivityPost, SystemUser, fmt.Sprintf("Created a post: '%s'", excerpt(content, postExcerpt)))

	return v, nil
}

// DeletePost drops the newest post of the latest version and returns the new version.
// Deleting from an empty feed still publishes an empty version.
func (s *Session) DeletePost() int {
	const op = "delete_post"
	v := s.posts.DeleteLatest()
	note, _ := s.posts.Note(v)
	if note == feed.NoteEmptyDelete {
		s.empty(structureFeed, op)
	}
	s.published(structureFeed, op, v, zap.String("note", note))
	s.record(ActivityPostDelete, SystemUser, note)

	return v
}

// UndoPost reverts the most recent feed edit. ok is false when there is
// nothing to undo.
func (s *Session) UndoPost() (version int, ok bool) {
	return s.step(s.posts.Undo, "undo_post", ActivityPostUndo)
}

// RedoPost reapplies the most recently undone feed edit. ok is false when
// there is nothing to redo.
func (s *Session) RedoPost() (version int, ok bool) {
	return s.step(s.posts.Redo, "redo_post", ActivityPostRedo)
}

func (s *Session) step(move func() (int, bool), op, activity string) (int, bool) {
	v, ok := move()
	if !ok {
		s.empty(structureFeed, op)
		return 0, false
	}
	note, _ := s.posts.Note(v)
	s.published(structureFeed, op, v, zap.String("note", note))
	s.record(activity, SystemUser, note)

	return v, true
}

// Feed returns the posts of the latest feed version, newest first.
func (s *Session) Feed() []string {
	posts, _ := s.posts.Values(s.posts.Latest())

	return posts
}

// FeedAt returns the posts of feed version v, newest first.
//
// Errors:
//   - feed.ErrVersionNotFound if v was never published.
func (s *Session) FeedAt(v int) ([]string, error) { return s.posts.Values(v) }

// ComparePosts reports posts added and removed between feed versions v1 and v2.
func (s *Session) ComparePosts(v1, v2 int) (feed.Diff[string], error) {
	return s.posts.Compare(v1, v2)
}

// FeedVersion returns the latest feed version.
func (s *Session) FeedVersion() int { return s.posts.Latest() }
