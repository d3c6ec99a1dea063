package socialverse_test

import (
	"fmt"

	"github.com/katalvlaran/socialverse/socialverse"
)

func ExampleSession() {
	cfg := socialverse.DefaultConfig()
	cfg.RecordActivity = false
	s, err := socialverse.New(cfg)
	if err != nil {
		panic(err)
	}

	_, _ = s.AddUser("1", "Ann", "ann@example.com")
	_, _ = s.AddUser("2", "Bob", "bob@example.com")
	v, _ := s.AddFriendship("1", "2")
	fmt.Println("graph version", v)

	_, _ = s.AddPost("hello")
	_, _ = s.AddPost("world")
	s.UndoPost()
	fmt.Println(s.Feed())

	n, _ := s.ReadNotification()
	fmt.Println(n)

	// Output:
	// graph version 3
	// [hello]
	// [FRIENDSHIP] from 1: 1 and 2 are now friends
}
