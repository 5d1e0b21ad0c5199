package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// SendFunc performs one outbound email send.
type SendFunc func() error

// QueueSettings bounds the queue's outbound throughput.
type QueueSettings struct {
	// MinDelayBetweenEmails is the floor on spacing between any two sends.
	MinDelayBetweenEmails time.Duration
	MaxEmailsPerMinute    int
	MaxEmailsPerHour      int
}

// QueueStatus is a point-in-time snapshot of the queue.
type QueueStatus struct {
	QueueLength    int   `json:"queue_length"`
	Processing     bool  `json:"processing"`
	SentLastMinute int   `json:"sent_last_minute"`
	SentLastHour   int   `json:"sent_last_hour"`
	MinDelayMs     int64 `json:"min_delay_ms"`
	MaxPerMinute   int   `json:"max_per_minute"`
	MaxPerHour     int   `json:"max_per_hour"`
}

type emailJob struct {
	send SendFunc
	done chan error // buffered; the job's future
}

// failurePause is the brief wait after a failed send before continuing, so
// a failing provider is not hammered.
const failurePause = time.Second

// rateLimitMargin is added to computed window waits so a send never lands
// exactly on a window edge.
const rateLimitMargin = time.Second

// EmailQueue serializes all outbound email sends behind configurable
// throughput ceilings. Multiple producers may Enqueue concurrently; a single
// drain goroutine, guarded by the processing flag, performs all provider I/O.
// Backpressure is sleep-and-requeue: a throttled job is pushed back onto the
// head of the queue so later arrivals can never overtake it, and its future
// simply resolves later.
type EmailQueue struct {
	mu         sync.Mutex
	jobs       []*emailJob
	processing bool
	lastSent   time.Time
	sentTimes  []time.Time

	settings QueueSettings
	logger   *slog.Logger

	// Injectable for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewEmailQueue creates a queue with the given settings; zero settings fields
// take the defaults (2s floor, 30/minute, 200/hour). One queue per process:
// correctness of the single-drain-loop guarantee depends on not
// re-instantiating per request.
func NewEmailQueue(settings QueueSettings, logger *slog.Logger) *EmailQueue {
	if settings.MinDelayBetweenEmails <= 0 {
		settings.MinDelayBetweenEmails = 2 * time.Second
	}
	if settings.MaxEmailsPerMinute <= 0 {
		settings.MaxEmailsPerMinute = 30
	}
	if settings.MaxEmailsPerHour <= 0 {
		settings.MaxEmailsPerHour = 200
	}
	q := &EmailQueue{
		settings: settings,
		logger:   logger,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	logger.Info("email queue initialized",
		"min_delay", settings.MinDelayBetweenEmails,
		"max_per_minute", settings.MaxEmailsPerMinute,
		"max_per_hour", settings.MaxEmailsPerHour,
	)
	return q
}

// Enqueue appends a job and returns its future: a channel that receives the
// job's outcome exactly once, when its send either succeeds or fails
// permanently. Rate-limit waits delay settlement but never fail a job. If no
// drain loop is active, one is started.
func (q *EmailQueue) Enqueue(send SendFunc) <-chan error {
	job := &emailJob{send: send, done: make(chan error, 1)}

	q.mu.Lock()
	q.jobs = append(q.jobs, job)
	length := len(q.jobs)
	start := !q.processing
	if start {
		q.processing = true
	}
	q.mu.Unlock()

	q.logger.Debug("email job enqueued", "queue_length", length)
	if start {
		go q.drain()
	}
	return job.done
}

// Status reports the queue's current state.
func (q *EmailQueue) Status() QueueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now()
	q.pruneLocked(now)

	minute := 0
	minuteAgo := now.Add(-time.Minute)
	for _, ts := range q.sentTimes {
		if ts.After(minuteAgo) {
			minute++
		}
	}
	return QueueStatus{
		QueueLength:    len(q.jobs),
		Processing:     q.processing,
		SentLastMinute: minute,
		SentLastHour:   len(q.sentTimes),
		MinDelayMs:     q.settings.MinDelayBetweenEmails.Milliseconds(),
		MaxPerMinute:   q.settings.MaxEmailsPerMinute,
		MaxPerHour:     q.settings.MaxEmailsPerHour,
	}
}

// drain is the single logical worker. It pops head jobs, waits out rate
// limits with the job requeued at the head, executes sends one at a time, and
// clears the processing flag when the queue empties.
func (q *EmailQueue) drain() {
	for {
		q.mu.Lock()
		if len(q.jobs) == 0 {
			q.processing = false
			q.mu.Unlock()
			q.logger.Debug("email queue drained")
			return
		}
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		q.mu.Unlock()

		for {
			allowed, wait, reason := q.admit()
			if allowed {
				break
			}
			// Head requeue: admission waits preserve FIFO order.
			q.mu.Lock()
			q.jobs = append([]*emailJob{job}, q.jobs...)
			q.mu.Unlock()
			q.logger.Info("email send throttled", "reason", reason, "wait", wait)
			q.sleep(wait)
			q.mu.Lock()
			job = q.jobs[0]
			q.jobs = q.jobs[1:]
			q.mu.Unlock()
		}

		if err := job.send(); err != nil {
			q.logger.Error("email send failed", "err", err)
			job.done <- err
			if q.pending() > 0 {
				q.sleep(failurePause)
			}
			continue
		}

		sentAt := q.now()
		q.mu.Lock()
		q.lastSent = sentAt
		q.sentTimes = append(q.sentTimes, sentAt)
		q.mu.Unlock()
		job.done <- nil
		q.logger.Debug("email sent")

		// Courteous minimum cadence between consecutive sends, independent
		// of the burst ceilings.
		if q.pending() > 0 {
			q.sleep(q.settings.MinDelayBetweenEmails)
		}
	}
}

// admit evaluates the rate limit against a freshly pruned trailing window.
// When a ceiling is met, the returned wait runs until the oldest counted send
// exits its window plus a safety margin, floored at the minimum delay.
func (q *EmailQueue) admit() (allowed bool, wait time.Duration, reason string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.pruneLocked(now)

	minuteAgo := now.Add(-time.Minute)
	inMinute := 0
	var oldestInMinute time.Time
	for _, ts := range q.sentTimes {
		if ts.After(minuteAgo) {
			inMinute++
			if oldestInMinute.IsZero() || ts.Before(oldestInMinute) {
				oldestInMinute = ts
			}
		}
	}

	if inMinute >= q.settings.MaxEmailsPerMinute {
		wait = oldestInMinute.Add(time.Minute + rateLimitMargin).Sub(now)
		return false, q.floorWait(wait), fmt.Sprintf("per-minute limit reached (%d/%d)", inMinute, q.settings.MaxEmailsPerMinute)
	}

	if len(q.sentTimes) >= q.settings.MaxEmailsPerHour {
		// sentTimes is pruned to the trailing hour and appended in order, so
		// the head is the oldest counted send.
		wait = q.sentTimes[0].Add(time.Hour + rateLimitMargin).Sub(now)
		return false, q.floorWait(wait), fmt.Sprintf("per-hour limit reached (%d/%d)", len(q.sentTimes), q.settings.MaxEmailsPerHour)
	}

	if !q.lastSent.IsZero() {
		if since := now.Sub(q.lastSent); since < q.settings.MinDelayBetweenEmails {
			return false, q.settings.MinDelayBetweenEmails - since, "minimum delay between sends"
		}
	}
	return true, 0, ""
}

func (q *EmailQueue) floorWait(wait time.Duration) time.Duration {
	if wait < q.settings.MinDelayBetweenEmails {
		return q.settings.MinDelayBetweenEmails
	}
	return wait
}

// pruneLocked drops send timestamps older than one hour. Callers hold q.mu.
func (q *EmailQueue) pruneLocked(now time.Time) {
	hourAgo := now.Add(-time.Hour)
	kept := q.sentTimes[:0]
	for _, ts := range q.sentTimes {
		if ts.After(hourAgo) {
			kept = append(kept, ts)
		}
	}
	q.sentTimes = kept
}

func (q *EmailQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}
