// Package feedback defines the two narrow side-effect sinks the operation
// layer is allowed to touch. The client core never calls into a rendering
// surface directly; it emits notifications and navigation targets through
// these interfaces and lets the embedding application decide what they mean.
package feedback

// Notifier receives transient user-facing messages. Calls are
// fire-and-forget; implementations must not block the caller.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Navigator receives the path the application should move to after an
// operation. Fire-and-forget; the core never inspects the outcome.
type Navigator interface {
	NavigateTo(path string)
}
