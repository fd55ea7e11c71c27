package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/morningbot/morning-signin-bot/internal/domain/contract"
	"github.com/morningbot/morning-signin-bot/internal/domain/entity"
)

const (
	// fallbackDelay is used when the computed delay is non-positive
	// (clock skew, DST edge). Never fail here: an error in this path
	// would silently kill all future notifications.
	fallbackDelay = 10 * time.Second

	// noConfigWait is how long to wait before re-checking when no
	// usable schedule config exists.
	noConfigWait = 1 * time.Hour
)

type scheduler struct {
	dm            contract.DataManager
	notifier      contract.Notifier
	workCal       contract.Calendar
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newScheduler(dm contract.DataManager, notifier contract.Notifier, workCal contract.Calendar) *scheduler {
	return &scheduler{
		dm:            dm,
		notifier:      notifier,
		workCal:       workCal,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// Channel is full, scheduler will recalculate eventually
	}
}

// mainLoop owns the timer: a single-shot timer is armed per iteration
// and re-armed by looping, so cycle runs can never overlap. The loop
// continues regardless of how a cycle ended; only Stop terminates it.
func (s *scheduler) mainLoop() {
	for {
		cfg, err := s.dm.Schedule().Get()
		if err != nil || cfg == nil || cfg.TargetChannelID == "" {
			if err != nil {
				log.Printf("Error loading schedule config: %v", err)
			} else {
				log.Println("No target channel configured, waiting for configuration...")
			}
			if !s.wait(noConfigWait) {
				return
			}
			continue
		}

		next := computeNextRunTime(time.Now(), cfg.SignInHour, cfg.SignInMinute, s.workCal)
		delay := time.Until(next)
		if delay <= 0 {
			log.Printf("Calculated non-positive delay (%s), retrying in %s", delay, fallbackDelay)
			delay = fallbackDelay
		} else {
			log.Printf("Next sign-in prompt scheduled for %s (in %s)", next.Format("2006-01-02 15:04:05"), delay.Round(time.Second))
		}

		timer := time.NewTimer(delay)

		select {
		case <-timer.C:
			s.runCycle()

		case <-s.configChanged:
			timer.Stop()
			log.Println("Schedule configuration changed, recalculating...")

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// wait blocks for d or until config changes; returns false on stop.
func (s *scheduler) wait(d time.Duration) bool {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return true
	case <-s.configChanged:
		timer.Stop()
		return true
	case <-s.stopChan:
		timer.Stop()
		return false
	}
}

// runCycle guards the notification cycle: whatever goes wrong inside,
// the loop re-arms afterwards.
func (s *scheduler) runCycle() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in notification cycle: %v", r)
		}
	}()

	if err := s.notifier.SendDailySignIn(); err != nil {
		log.Printf("Daily sign-in cycle failed: %v", err)
	}
}

// computeNextRunTime returns the next valid fire time: today at
// hour:minute if still ahead, otherwise the following day, then
// advanced past any weekend or holiday. Pure given (now, config,
// calendar); always strictly after now.
func computeNextRunTime(now time.Time, hour, minute int, workCal contract.Calendar) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	for workCal.IsNonWorkingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// GetConfig returns the current schedule config.
func (s *scheduler) GetConfig() (*entity.ScheduleConfig, error) {
	cfg, err := s.dm.Schedule().Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no schedule configured")
	}
	return cfg, nil
}

// SetTime updates the daily prompt time and pokes the main loop.
func (s *scheduler) SetTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid time %02d:%02d", hour, minute)
	}

	err := s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		cfg, err := dm.Schedule().Get()
		if err != nil {
			return err
		}
		if cfg == nil {
			return fmt.Errorf("no schedule configured")
		}

		cfg.SignInHour = hour
		cfg.SignInMinute = minute
		return dm.Schedule().Update(cfg)
	})
	if err != nil {
		return fmt.Errorf("failed to update sign-in time: %w", err)
	}

	s.NotifyConfigChange()
	return nil
}

// SetChannel updates the prompt's target channel and pokes the main loop.
func (s *scheduler) SetChannel(channelID string) error {
	if channelID == "" {
		return fmt.Errorf("channel id cannot be empty")
	}

	err := s.dm.WithTransaction(context.Background(), func(dm contract.DataManager) error {
		cfg, err := dm.Schedule().Get()
		if err != nil {
			return err
		}
		if cfg == nil {
			return fmt.Errorf("no schedule configured")
		}

		cfg.TargetChannelID = channelID
		return dm.Schedule().Update(cfg)
	})
	if err != nil {
		return fmt.Errorf("failed to update target channel: %w", err)
	}

	s.NotifyConfigChange()
	return nil
}

// EnsureConfig seeds the schedule config from defaults on first run.
func (s *scheduler) EnsureConfig(defaults entity.ScheduleConfig) error {
	existing, err := s.dm.Schedule().Get()
	if err != nil {
		return fmt.Errorf("failed to check schedule config: %w", err)
	}
	if existing != nil {
		return nil
	}

	if err := s.dm.Schedule().Create(&defaults); err != nil {
		return fmt.Errorf("failed to seed schedule config: %w", err)
	}

	log.Printf("Seeded schedule config: %02d:%02d, channel %q", defaults.SignInHour, defaults.SignInMinute, defaults.TargetChannelID)
	return nil
}
