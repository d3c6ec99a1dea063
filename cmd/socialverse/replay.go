package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialverse/socialverse"
)

func newReplayCmd(flags *rootFlags) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Run every step of a scenario and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger, err := flags.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("socialverse: build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			s, err := socialverse.New(cfg, socialverse.WithLogger(logger))
			if err != nil {
				return err
			}

			logger.Info("replay started", zap.String("scenario", sc.Name), zap.Int("steps", len(sc.Steps)))
			failed := replay(cmd.OutOrStdout(), s, sc)
			logger.Info("replay finished", zap.Int("failed", failed))
			if strict && failed > 0 {
				return fmt.Errorf("socialverse: %d of %d steps failed", failed, len(sc.Steps))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any step fails")

	return cmd
}

// replay runs every step, printing one "N op: result" line per step, and
// returns how many steps failed. A failing step does not stop the replay.
func replay(w io.Writer, s *socialverse.Session, sc *Scenario) int {
	failed := 0
	for i, st := range sc.Steps {
		out, err := runStep(s, st)
		if err != nil {
			failed++
			out = "error: " + err.Error()
		}
		fmt.Fprintf(w, "%d %s: %s\n", i+1, st.Op, out)
	}

	return failed
}

// runStep dispatches one validated step to the session.
func runStep(s *socialverse.Session, st Step) (string, error) {
	a := st.Args
	switch st.Op {
	case "add_user":
		return versionResult(s.AddUser(a[0], a[1], a[2]))
	case "add_friendship":
		return versionResult(s.AddFriendship(a[0], a[1]))
	case "remove_friendship":
		return versionResult(s.RemoveFriendship(a[0], a[1]))
	case "mutual_friends":
		return list(s.MutualFriends(a[0], a[1])), nil
	case "communities":
		groups := s.Communities()
		parts := make([]string, 0, len(groups))
		for _, g := range groups {
			parts = append(parts, g.Root+"="+list(g.Members))
		}
		return strings.Join(parts, " "), nil
	case "user_info":
		p, ok := s.UserInfo(a[0])
		if !ok {
			return "not found", nil
		}
		return fmt.Sprintf("%s %s <%s> friends=%s", p.ID, p.Name, p.Email, list(p.Friends)), nil
	case "users":
		users := s.Users()
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		return list(ids), nil
	case "reach":
		res, err := s.Reach(a[0])
		if err != nil {
			return "", err
		}
		parts := make([]string, 0, len(res.Order))
		for _, id := range res.Order {
			parts = append(parts, id+":"+strconv.Itoa(res.Depth[id]))
		}
		return strings.Join(parts, " "), nil
	case "add_post":
		return versionResult(s.AddPost(a[0]))
	case "delete_post":
		return versionResult(s.DeletePost(), nil)
	case "undo_post":
		return stepResult(s.UndoPost())
	case "redo_post":
		return stepResult(s.RedoPost())
	case "feed":
		return list(s.Feed()), nil
	case "log_activity":
		return versionResult(s.LogActivity(a[0], a[1], a[2]), nil)
	case "pop_activity":
		act, ok := s.PopActivity()
		if !ok {
			return "empty", nil
		}
		return act.String(), nil
	case "activities":
		acts := s.Activities()
		parts := make([]string, 0, len(acts))
		for _, act := range acts {
			parts = append(parts, act.Type)
		}
		return list(parts), nil
	case "notify":
		return versionResult(s.Notify(a[0], a[1], a[2]), nil)
	case "read_notification":
		n, ok := s.ReadNotification()
		if !ok {
			return "empty", nil
		}
		return n.String(), nil
	case "notifications":
		pending := s.Notifications()
		parts := make([]string, 0, len(pending))
		for _, n := range pending {
			parts = append(parts, n.Message)
		}
		return list(parts), nil
	case "graph_versions":
		infos := s.GraphVersions()
		parts := make([]string, 0, len(infos))
		for _, vi := range infos {
			parts = append(parts, fmt.Sprintf("v%d(%du/%df)", vi.Version, vi.Users, vi.Friendships))
		}
		return strings.Join(parts, " "), nil
	case "time_travel":
		v, err := strconv.Atoi(a[0])
		if err != nil {
			return "", fmt.Errorf("time_travel: version %q is not an integer", a[0])
		}
		return versionResult(s.TimeTravel(v))
	case "stats":
		st := s.Stats()
		return fmt.Sprintf("graph=v%d users=%d friendships=%d communities=%d feed=v%d posts=%d activities=%d notifications=%d",
			st.GraphVersion, st.Users, st.Friendships, st.Communities,
			st.FeedVersion, st.FeedLength, st.Activities, st.Notifications), nil
	default:
		return "", fmt.Errorf("%w: unknown op %q", errBadScenario, st.Op)
	}
}

func versionResult(v int, err error) (string, error) {
	if err != nil {
		return "", err
	}

	return "version " + strconv.Itoa(v), nil
}

func stepResult(v int, ok bool) (string, error) {
	if !ok {
		return "nothing to do", nil
	}

	return "version " + strconv.Itoa(v), nil
}

func list(xs []string) string { return "[" + strings.Join(xs, " ") + "]" }
