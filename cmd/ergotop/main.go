package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Can-Ozan/ergotop/internal/achievements"
	"github.com/Can-Ozan/ergotop/internal/assistant"
	"github.com/Can-Ozan/ergotop/internal/config"
	"github.com/Can-Ozan/ergotop/internal/exercises"
	"github.com/Can-Ozan/ergotop/internal/feedback"
	"github.com/Can-Ozan/ergotop/internal/notify"
	"github.com/Can-Ozan/ergotop/internal/schedule"
	"github.com/Can-Ozan/ergotop/internal/session"
	"github.com/Can-Ozan/ergotop/internal/stats"
	"github.com/Can-Ozan/ergotop/internal/storage"
	"github.com/Can-Ozan/ergotop/internal/tui"
)

const leaderboardLimit = 10

func main() {
	setupFlag := flag.Bool("setup", false, "Write a default config file and exit")
	debugFlag := flag.String("debug", "", "Write notification debug log (JSONL) to the specified file path")
	flag.Parse()

	if *setupFlag {
		RunSetup()
		return
	}

	loadResult, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ergotop: config error: %v\n", err)
		os.Exit(1)
	}
	cfg := loadResult.Config

	for _, w := range loadResult.Warnings {
		fmt.Fprintf(os.Stderr, "ergotop: config warning: %s\n", w)
	}

	secrets, err := config.LoadSecrets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ergotop: environment error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath, cfg.Storage.RetentionDays)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ergotop: storage unavailable, continuing without persistence: %v\n", err)
		store = nil
	}
	isPersistent := store != nil

	var dispatchOpts []notify.DispatcherOption
	dispatchOpts = append(dispatchOpts,
		notify.WithNotifier(notify.NewPlatformNotifier(cfg.Notifications.SystemNotify)),
		notify.WithDedupWindow(time.Duration(cfg.Notifications.DedupMinutes)*time.Minute),
	)
	if *debugFlag != "" {
		debugFile, err := os.OpenFile(*debugFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ergotop: failed to open debug log %q: %v\n", *debugFlag, err)
			os.Exit(1)
		}
		defer debugFile.Close()
		dispatchOpts = append(dispatchOpts, notify.WithLogger(notify.NewFileLogger(debugFile)))
	}

	feed := notify.NewFeed(cfg.Display.EventBufferSize)
	dispatcher := notify.NewDispatcher(feed, dispatchOpts...)

	clock := schedule.SystemClock()
	scheduler := schedule.NewScheduler(clock)

	userID := cfg.Profile.UserID
	now := clock.Now()

	tracker := stats.NewTracker(now)
	if store != nil {
		store.UpsertProfile(userID, cfg.Profile.DisplayName)
		if counters, err := store.TodayCounters(userID, now); err == nil {
			tracker.Seed(stats.TodayStats{
				Sessions:  counters.Sessions,
				Exercises: counters.Exercises,
				Breaks:    counters.Breaks,
				Postures:  counters.Postures,
			})
		} else {
			fmt.Fprintf(os.Stderr, "ergotop: could not restore today's counters: %v\n", err)
		}
	}

	controller := session.New(cfg, scheduler, clock, dispatcher, feed, tracker, store)

	runner := exercises.NewRunner(func(ex exercises.Exercise) {
		controller.CompleteExercise(ex.DurationSeconds)
	})

	client := assistant.NewClient(assistant.Config{
		APIKey:      secrets.AssistantAPIKey,
		BaseURL:     cfg.Assistant.BaseURL,
		Model:       cfg.Assistant.Model,
		MaxTokens:   cfg.Assistant.MaxTokens,
		Temperature: cfg.Assistant.Temperature,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// The TUI owns the terminal; route stray log output away from it.
	log.SetOutput(io.Discard)

	controller.Start()

	shutdown := func() {
		controller.Close()
		scheduler.StopAll()
		if store != nil {
			_ = store.Close()
		}
	}

	model := tui.NewModel(cfg,
		tui.WithSessionProvider(controller),
		tui.WithExerciseProvider(runner),
		tui.WithStatsProvider(stats.NewCalculator()),
		tui.WithCommunityProvider(&communityAdapter{store: store, userID: userID, clock: clock}),
		tui.WithAssistantProvider(&assistantAdapter{client: client, store: store, userID: userID, clock: clock}),
		tui.WithFeedbackProvider(&feedbackAdapter{store: store, userID: userID, clock: clock}),
		tui.WithPersistenceFlag(isPersistent),
		tui.WithOnShutdown(shutdown),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-sigCh:
			shutdown()
			p.Quit()
		case <-ctx.Done():
			return
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ergotop: %v\n", err)
		os.Exit(1)
	}
}

// communityAdapter resolves achievement progress from stored totals and
// awards any newly met achievements as a side effect of reading them.
type communityAdapter struct {
	store  *storage.Store
	userID string
	clock  schedule.Clock
}

func (a *communityAdapter) Achievements() []achievements.Status {
	totals, earned := a.load()
	if a.store != nil {
		for _, def := range achievements.NewlyEarned(totals, earned) {
			a.store.MarkAchievementEarned(a.userID, def.ID, def.Points, a.clock.Now())
			earned[def.ID] = a.clock.Now()
		}
	}
	return achievements.Resolve(totals, earned)
}

func (a *communityAdapter) TotalPoints() int {
	_, earned := a.load()
	return achievements.TotalPoints(earned)
}

func (a *communityAdapter) Leaderboard() []storage.Profile {
	if a.store == nil {
		return nil
	}
	profiles, err := a.store.Leaderboard(leaderboardLimit)
	if err != nil {
		return nil
	}
	return profiles
}

func (a *communityAdapter) load() (achievements.Totals, map[string]time.Time) {
	earned := make(map[string]time.Time)
	if a.store == nil {
		return achievements.Totals{}, earned
	}

	var totals achievements.Totals
	if t, err := a.store.Totals(a.userID, a.clock.Now()); err == nil {
		totals = achievements.Totals{
			Sessions:   t.Sessions,
			Exercises:  t.Exercises,
			Hours:      t.Hours,
			StreakDays: t.StreakDays,
		}
	}
	if rows, err := a.store.EarnedAchievements(a.userID); err == nil {
		for _, row := range rows {
			earned[row.AchievementID] = row.EarnedAt
		}
	}
	return totals, earned
}

// assistantAdapter wraps the chat client with stored activity context
// and persists each exchange.
type assistantAdapter struct {
	client *assistant.Client
	store  *storage.Store
	userID string
	clock  schedule.Clock
}

func (a *assistantAdapter) Chat(ctx context.Context, message string) string {
	var activityContext []string
	if a.store != nil {
		if recent, err := a.store.RecentActivities(a.userID, 10); err == nil {
			activityContext = assistant.ActivityContext(recent)
		}
	}

	reply := a.client.Chat(ctx, message, activityContext)

	if a.store != nil {
		a.store.SaveChat(storage.ChatRecord{
			UserID:      a.userID,
			Message:     message,
			Response:    reply,
			MessageType: "general",
			CreatedAt:   a.clock.Now(),
		})
	}
	return reply
}

func (a *assistantAdapter) History(limit int) []storage.ChatRecord {
	if a.store == nil {
		return nil
	}
	records, err := a.store.ChatHistory(a.userID, limit)
	if err != nil {
		return nil
	}
	return records
}

type feedbackAdapter struct {
	store  *storage.Store
	userID string
	clock  schedule.Clock
}

func (a *feedbackAdapter) Submit(entry feedback.Entry) error {
	if a.store == nil {
		return errors.New("feedback requires persistence, which is unavailable")
	}
	return feedback.NewRecorder(a.store, a.userID).Submit(entry, a.clock.Now())
}
