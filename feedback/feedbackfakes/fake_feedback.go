// Package feedbackfakes provides recording implementations of the feedback
// interfaces for tests.
package feedbackfakes

import "sync"

// Notification is one recorded Notifier call.
type Notification struct {
	Message string
	Success bool
}

// FakeNotifier records every notification it receives.
type FakeNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (f *FakeNotifier) Success(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, Notification{Message: message, Success: true})
}

func (f *FakeNotifier) Failure(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, Notification{Message: message, Success: false})
}

// Notifications returns a copy of everything recorded so far.
func (f *FakeNotifier) Notifications() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.notifications))
	copy(out, f.notifications)
	return out
}

// FakeNavigator records every navigation target it receives.
type FakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func NewFakeNavigator() *FakeNavigator {
	return &FakeNavigator{}
}

func (f *FakeNavigator) NavigateTo(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
}

// Paths returns a copy of every recorded navigation target.
func (f *FakeNavigator) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}
