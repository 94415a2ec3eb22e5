package core

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/Rorical/RoriPersons/internal/eventbus"
	"github.com/Rorical/RoriPersons/internal/store"
	"github.com/Rorical/RoriPersons/internal/view"
)

// PersonService applies UI intents to the person list one at a time and pushes
// every resulting snapshot back to the UI.
type PersonService struct {
	state    *PersonState
	eventBus *eventbus.EventBus
	clock    clockwork.Clock
	logger   *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

func NewPersonService(initial *store.State, eb *eventbus.EventBus, clock clockwork.Clock, logger *slog.Logger) *PersonService {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &PersonService{
		state:    NewPersonState(initial),
		eventBus: eb,
		clock:    clock,
		logger:   logger.With("component", "person_service"),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start runs the core logic in a goroutine
func (ps *PersonService) Start() {
	// Send initial state to UI immediately
	ps.pushStateToUI()
	ps.started = true
	go ps.eventLoop()
}

// Stop cancels the event loop and waits for it to exit.
func (ps *PersonService) Stop() {
	ps.cancel()
	if ps.started {
		<-ps.done
	}
}

// Snapshot returns the current snapshot.
func (ps *PersonService) Snapshot() *store.State {
	return ps.state.Current()
}

func (ps *PersonService) eventLoop() {
	defer close(ps.done)
	for {
		select {
		case <-ps.ctx.Done():
			return
		case event, ok := <-ps.eventBus.UIToCore():
			if !ok {
				return
			}
			ps.HandleUIEvent(event)
		}
	}
}

// HandleUIEvent applies a single event synchronously and publishes the outcome.
func (ps *PersonService) HandleUIEvent(event eventbus.UIEvent) {
	action := event.Action()
	version := ps.state.Version()
	hadError := ps.state.GetLastError() != nil
	next, err := ps.state.Apply(action)
	switch {
	case err != nil:
		// Stale index or id from an earlier render
		ps.logger.Warn("Action rejected", "action", action.String(), "error", err)
	case ps.state.Version() == version && !hadError:
		ps.logger.Debug("Action left state unchanged", "action", action.String())
		return
	default:
		ps.logger.Debug("Action applied",
			"action", action.String(),
			"version", ps.state.Version(),
			"persons", next.Len(),
			"visibility", next.Visibility().String(),
		)
	}
	ps.pushStateToUI()
}

func (ps *PersonService) pushStateToUI() {
	current := ps.state.Current()
	if err := ps.eventBus.SendToUI(eventbus.StateUpdateEvent{
		State:     current,
		View:      view.Derive(current),
		Error:     ps.state.GetLastError(),
		UpdatedAt: ps.clock.Now(),
	}); err != nil {
		ps.logger.Error("Failed to send state to UI", "error", err)
	}
}
