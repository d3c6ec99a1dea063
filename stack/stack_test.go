package stack_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialverse/stack"
)

type activity struct {
	Type, User, Details string
}

// TestStack_PushPopScenario pushes one LOGIN activity, pops it, then pops the empty top.
func TestStack_PushPopScenario(t *testing.T) {
	s := stack.New[activity]()
	v := s.Push(activity{Type: "LOGIN", User: "1", Details: "x"})
	require.Equal(t, 1, v)

	got, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, "LOGIN", got.Type)
	require.Equal(t, 2, s.Version())

	_, ok = s.Pop()
	require.False(t, ok, "popping an empty top signals empty")
	require.Equal(t, 2, s.Version(), "empty pop creates no version")
	require.Equal(t, 1, s.Pushes(), "history shows the stack was used")
}

func TestStack_NeverUsedVsEmptyNow(t *testing.T) {
	fresh := stack.New[int]()
	require.Zero(t, fresh.Pushes())
	require.Empty(t, fresh.All())

	used := stack.New[int]()
	used.Push(1)
	_, _ = used.Pop()
	require.Empty(t, used.All())
	require.Equal(t, 1, used.Pushes())
}

func TestStack_NewestFirstAndVersionsImmutable(t *testing.T) {
	s := stack.New[string]()
	s.Push("a")
	s.Push("b")
	v3 := s.Push("c")
	require.Equal(t, []string{"c", "b", "a"}, s.All())

	_, _ = s.Pop()
	v5 := s.Push("d")
	require.Equal(t, []string{"d", "b", "a"}, s.All())

	old, ok := s.At(v3)
	require.True(t, ok)
	require.Equal(t, []string{"c", "b", "a"}, old)
	zero, ok := s.At(0)
	require.True(t, ok, "version 0 is a real version, not an alias for current")
	require.Empty(t, zero)

	require.Equal(t, 3, s.Size(v5))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.Versions())
	_, ok = s.At(42)
	require.False(t, ok)
	require.Zero(t, s.Size(42))

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "d", top)
}

// TestStack_ConcurrentPushes checks that racing writers never publish the same version twice.
func TestStack_ConcurrentPushes(t *testing.T) {
	const writers, perWriter = 8, 200
	s := stack.New[int]()
	seen := make(chan int, writers*perWriter)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				seen <- s.Push(i)
			}
		}()
	}
	wg.Wait()
	close(seen)

	versions := make(map[int]bool)
	for v := range seen {
		require.False(t, versions[v], "version %d published twice", v)
		versions[v] = true
	}
	require.Equal(t, writers*perWriter, s.Version())
	require.Equal(t, writers*perWriter, s.Size(s.Version()))
}
