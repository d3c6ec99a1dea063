package feed_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/socialverse/feed"
)

type FeedSuite struct {
	suite.Suite
	l *feed.List[string]
}

func (s *FeedSuite) SetupTest() {
	s.l = feed.New[string]()
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedSuite))
}

func (s *FeedSuite) values(v int) []string {
	vals, err := s.l.Values(v)
	s.Require().NoError(err)

	return vals
}

func (s *FeedSuite) TestInitialVersion() {
	s.Require().Equal(0, s.l.Latest())
	s.Require().Empty(s.values(0))
	note, err := s.l.Note(0)
	s.Require().NoError(err)
	s.Require().Equal(feed.NoteInitial, note)
	s.Require().False(s.l.CanUndo())
	s.Require().False(s.l.CanRedo())
}

func (s *FeedSuite) TestAddPrependsAndSharesTail() {
	require := s.Require()
	v1, err := s.l.Add(0, "p1")
	require.NoError(err)
	v2, err := s.l.Add(v1, "p2")
	require.NoError(err)

	require.Equal(1, v1)
	require.Equal(2, v2)
	require.Equal([]string{"p1"}, s.values(v1))
	require.Equal([]string{"p2", "p1"}, s.values(v2))

	shared, err := s.l.SharesTail(v1, v2)
	require.NoError(err)
	require.True(shared, "v2 must reuse v1's chain rather than copy it")

	note, _ := s.l.Note(v2)
	require.Equal("Added 'p2'", note)
}

func (s *FeedSuite) TestBranchingFromOldVersion() {
	require := s.Require()
	v1, _ := s.l.Add(0, "p1")
	_, _ = s.l.Add(v1, "p2")
	v3, err := s.l.Add(v1, "q2")
	require.NoError(err)

	require.Equal([]string{"q2", "p1"}, s.values(v3))
	require.Equal([]string{"p2", "p1"}, s.values(2), "sibling branch unaffected")
}

func (s *FeedSuite) TestDelete() {
	require := s.Require()
	v1, _ := s.l.Add(0, "p1")
	v2, _ := s.l.Add(v1, "p2")

	v3, err := s.l.Delete(v2)
	require.NoError(err)
	require.Equal([]string{"p1"}, s.values(v3))
	require.Equal([]string{"p2", "p1"}, s.values(v2))
	note, _ := s.l.Note(v3)
	require.Equal("Deleted 'p2'", note)

	shared, _ := s.l.SharesTail(v3, v1)
	require.True(shared)
}

func (s *FeedSuite) TestDeleteEmptyStillPublishes() {
	require := s.Require()
	v, err := s.l.Delete(0)
	require.NoError(err)
	require.Equal(1, v)
	require.Empty(s.values(v))
	note, _ := s.l.Note(v)
	require.Equal(feed.NoteEmptyDelete, note)
}

func (s *FeedSuite) TestUnknownVersion() {
	require := s.Require()
	_, err := s.l.Add(5, "x")
	require.ErrorIs(err, feed.ErrVersionNotFound)
	_, err = s.l.Delete(-1)
	require.ErrorIs(err, feed.ErrVersionNotFound)
	_, err = s.l.View(1)
	require.ErrorIs(err, feed.ErrVersionNotFound)
	_, err = s.l.Note(1)
	require.ErrorIs(err, feed.ErrVersionNotFound)
	_, err = s.l.Compare(0, 3)
	require.ErrorIs(err, feed.ErrVersionNotFound)
	require.Equal(0, s.l.Latest(), "failed edits publish nothing")
}

func (s *FeedSuite) TestUndoRedoNothingToDo() {
	_, ok := s.l.Undo()
	s.Require().False(ok)
	_, ok = s.l.Redo()
	s.Require().False(ok)
	s.Require().Equal(0, s.l.Latest())
}

// TestUndoRedoRoundTrip walks add, add, undo, redo and checks every version survives.
func (s *FeedSuite) TestUndoRedoRoundTrip() {
	require := s.Require()
	v1, _ := s.l.Add(0, "p1")
	v2, _ := s.l.Add(v1, "p2")

	v3, ok := s.l.Undo()
	require.True(ok)
	require.Equal(3, v3)
	require.Equal(s.values(v1), s.values(v3), "undo jumps back to the last edit's source")
	note, _ := s.l.Note(v3)
	require.Equal("Undo → version 1", note)

	v4, ok := s.l.Redo()
	require.True(ok)
	require.Equal(4, v4)
	require.Equal(s.values(v2), s.values(v4))
	note, _ = s.l.Note(v4)
	require.Equal("Redo → version 2", note)

	require.Equal(5, s.l.Len(), "undo and redo only ever append")
	require.Equal([]string{"p2", "p1"}, s.values(v2))
}

func (s *FeedSuite) TestUndoAfterRedoReturnsToUndoneState() {
	require := s.Require()
	v1, _ := s.l.Add(0, "p1")
	_, _ = s.l.Add(v1, "p2")
	v3, _ := s.l.Undo()
	_, _ = s.l.Redo()

	v5, ok := s.l.Undo()
	require.True(ok)
	require.Equal(s.values(v3), s.values(v5))
}

func (s *FeedSuite) TestChainedUndo() {
	require := s.Require()
	v1, _ := s.l.Add(0, "p1")
	v2, _ := s.l.Add(v1, "p2")
	_, _ = s.l.Add(v2, "p3")

	u1, _ := s.l.Undo()
	require.Equal([]string{"p2", "p1"}, s.values(u1))
	u2, _ := s.l.Undo()
	require.Equal([]string{"p1"}, s.values(u2))
	u3, _ := s.l.Undo()
	require.Empty(s.values(u3))
	_, ok := s.l.Undo()
	require.False(ok)
}

func (s *FeedSuite) TestNewEditClearsRedo() {
	v1, _ := s.l.Add(0, "p1")
	_, _ = s.l.Undo()
	s.Require().True(s.l.CanRedo())
	_, _ = s.l.Add(v1, "p2")
	s.Require().False(s.l.CanRedo())
}

func (s *FeedSuite) TestAppendUsesLatest() {
	require := s.Require()
	s.l.Append("a")
	s.l.Append("b")
	v := s.l.Append("c")
	require.Equal([]string{"c", "b", "a"}, s.values(v))

	head, ok, err := s.l.Head(v)
	require.NoError(err)
	require.True(ok)
	require.Equal("c", head)

	_, ok, err = s.l.Head(0)
	require.NoError(err)
	require.False(ok)
}

func (s *FeedSuite) TestDeleteLatest() {
	require := s.Require()
	s.l.Append("a")
	s.l.Append("b")
	v := s.l.DeleteLatest()
	require.Equal([]string{"a"}, s.values(v))
	note, err := s.l.Note(v)
	require.NoError(err)
	require.Equal("Deleted 'b'", note)

	v, ok := s.l.Undo()
	require.True(ok)
	require.Equal([]string{"b", "a"}, s.values(v))

	s.l.DeleteLatest()
	v = s.l.DeleteLatest()
	require.Empty(s.values(v))
	v = s.l.DeleteLatest()
	note, _ = s.l.Note(v)
	require.Equal(feed.NoteEmptyDelete, note)
}

// TestAppendDeleteLatestConcurrent races appends against deletes of the
// latest version; every append must survive exactly one matching delete.
func TestAppendDeleteLatestConcurrent(t *testing.T) {
	const seed, workers, perWorker = 2000, 4, 500
	l := feed.New[int]()
	for i := 0; i < seed; i++ {
		l.Append(i)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				l.Append(-1)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				l.DeleteLatest()
			}
		}()
	}
	wg.Wait()

	values, err := l.Values(l.Latest())
	require.NoError(t, err)
	require.Len(t, values, seed)
	require.Equal(t, seed+2*workers*perWorker, l.Latest())
}

func (s *FeedSuite) TestViewIsLazyAndRestartable() {
	require := s.Require()
	for _, p := range []string{"a", "b", "c", "d"} {
		s.l.Append(p)
	}
	seq, err := s.l.View(s.l.Latest())
	require.NoError(err)

	var firstTwo []string
	for v := range seq {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	require.Equal([]string{"d", "c"}, firstTwo)

	var all []string
	for v := range seq {
		all = append(all, v)
	}
	require.Equal([]string{"d", "c", "b", "a"}, all)
}

func (s *FeedSuite) TestCompare() {
	require := s.Require()
	v1, _ := s.l.Add(0, "p1")
	v2, _ := s.l.Add(v1, "p2")
	v3, _ := s.l.Delete(v2)
	v4, _ := s.l.Delete(v3)

	d, err := s.l.Compare(v1, v2)
	require.NoError(err)
	require.Equal([]string{"p2"}, d.Added)
	require.Empty(d.Removed)

	d, err = s.l.Compare(v2, v4)
	require.NoError(err)
	require.Empty(d.Added)
	require.Equal([]string{"p2", "p1"}, d.Removed)

	d, err = s.l.Compare(v1, v3)
	require.NoError(err)
	require.True(d.Empty())
}
