package eventbus

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Rorical/RoriPersons/internal/store"
	"github.com/Rorical/RoriPersons/internal/view"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrChannelFull = errors.New("channel is full")
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	// Action converts the event into the store operation it requests
	Action() store.Action
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// DeletePersonEvent - UI requests removal of the record at Index
type DeletePersonEvent struct {
	Index int
}

func (e DeletePersonEvent) Action() store.Action { return store.Delete{Index: e.Index} }

// RenamePersonEvent - UI reports a new value of the name field for ID
type RenamePersonEvent struct {
	ID   string
	Name string
}

func (e RenamePersonEvent) Action() store.Action { return store.Rename{ID: e.ID, Name: e.Name} }

// TogglePersonsEvent - UI requests the list be shown or hidden
type TogglePersonsEvent struct{}

func (e TogglePersonsEvent) Action() store.Action { return store.Toggle{} }

// StateUpdateEvent - Core pushes the current snapshot and its view model to UI.
// Error is set when the last action failed; State is then the unchanged prior snapshot.
type StateUpdateEvent struct {
	State     *store.State
	View      view.ViewModel
	Error     error
	UpdatedAt time.Time
}

func (e StateUpdateEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// Options tunes channel sizes and the send circuit breaker
type Options struct {
	BufferSize   int
	MaxFailures  uint32
	ResetTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		BufferSize:   100,
		MaxFailures:  5,
		ResetTimeout: 30 * time.Second,
	}
}

// EventBus handles communication between UI and Core with one circuit breaker
// per direction
type EventBus struct {
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
	toCoreBreaker *gobreaker.CircuitBreaker
	toUIBreaker   *gobreaker.CircuitBreaker
}

func NewEventBus() *EventBus {
	return NewEventBusWithOptions(DefaultOptions())
}

func NewEventBusWithOptions(opts Options) *EventBus {
	return &EventBus{
		uiToCore:      make(chan UIEvent, opts.BufferSize),
		coreToUI:      make(chan CoreEvent, opts.BufferSize),
		toCoreBreaker: newBreaker("eventbus.to_core", opts),
		toUIBreaker:   newBreaker("eventbus.to_ui", opts),
	}
}

func newBreaker(name string, opts Options) *gobreaker.CircuitBreaker {
	maxFailures := opts.MaxFailures
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     opts.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	if eb.errorCallback != nil {
		eb.errorCallback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

// send runs a non-blocking channel send through the circuit breaker
func (eb *EventBus) send(operation string, cb *gobreaker.CircuitBreaker, trySend func() bool) error {
	_, err := cb.Execute(func() (interface{}, error) {
		if !trySend() {
			return nil, ErrChannelFull
		}
		return nil, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = ErrCircuitOpen
	}
	if err != nil {
		eb.reportError(operation, err)
	}
	return err
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	return eb.send("SendToCore", eb.toCoreBreaker, func() bool {
		select {
		case eb.uiToCore <- event:
			return true
		default:
			return false
		}
	})
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	return eb.send("SendToUI", eb.toUIBreaker, func() bool {
		select {
		case eb.coreToUI <- event:
			return true
		default:
			return false
		}
	})
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) ToCoreBreakerState() gobreaker.State {
	return eb.toCoreBreaker.State()
}

func (eb *EventBus) ToUIBreakerState() gobreaker.State {
	return eb.toUIBreaker.State()
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
