package dom

import "time"

// Task is a pending scheduled callback
type Task interface {
	// Cancel stops the callback. It returns false if the callback already ran or was cancelled.
	Cancel() bool
}

// Scheduler runs callbacks after a delay
type Scheduler interface {
	After(delay time.Duration, fn func()) Task
}

// TimerScheduler schedules on the runtime timer heap
type TimerScheduler struct{}

func (TimerScheduler) After(delay time.Duration, fn func()) Task {
	return timerTask{t: time.AfterFunc(delay, fn)}
}

type timerTask struct {
	t *time.Timer
}

func (tt timerTask) Cancel() bool {
	return tt.t.Stop()
}
