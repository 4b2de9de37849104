package client

import (
	"sync"
	"time"
)

// DefaultToastDelay is how long a notification stays visible
const DefaultToastDelay = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	Kind    Kind
	Message string
}

// Notifier holds at most one notification. A new one replaces the pending
// one, and each is dismissed automatically after the delay.
type Notifier struct {
	delay  time.Duration
	onShow func(Notification)

	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	seq     uint64
}

// NewNotifier returns a notifier; onShow, if not nil, is called for every
// notification shown.
func NewNotifier(delay time.Duration, onShow func(Notification)) *Notifier {
	return &Notifier{delay: delay, onShow: onShow}
}

func (n *Notifier) Show(kind Kind, message string) {
	note := Notification{Kind: kind, Message: message}

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = &note
	n.timer = time.AfterFunc(n.delay, func() { n.expire(seq) })
	n.mu.Unlock()

	if n.onShow != nil {
		n.onShow(note)
	}
}

// expire dismisses the notification shown as seq, unless it was replaced.
func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == seq {
		n.current = nil
		n.timer = nil
	}
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}
