package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
)

// NotifyLevel classifies a user notification
type NotifyLevel string

const (
	NotifyInfo    NotifyLevel = "info"
	NotifySuccess NotifyLevel = "success"
	NotifyError   NotifyLevel = "error"
)

// NotifyFunc receives transient, non-blocking user notifications
type NotifyFunc func(level NotifyLevel, message string)

// Session owns the local ailment collection for one active view. Local edits
// are applied optimistically before the remote write resolves; push-delivered
// events from other actors are reconciled into the same collection. The
// collection is replaced wholesale on every transition, never mutated in
// place, so readers always see a fully-formed snapshot.
type Session struct {
	remote Remote
	bus    providers.EventBus
	notify NotifyFunc

	mu        sync.Mutex
	ailments  []entities.Ailment
	expansion *ExpansionState
	pending   map[string]int

	cancel context.CancelFunc
	writes sync.WaitGroup
	events sync.WaitGroup
}

// NewSession creates a session over a remote write surface and a push-event
// bus. notify may be nil.
func NewSession(remote Remote, bus providers.EventBus, notify NotifyFunc) *Session {
	if notify == nil {
		notify = func(NotifyLevel, string) {}
	}
	return &Session{
		remote:    remote,
		bus:       bus,
		notify:    notify,
		ailments:  []entities.Ailment{},
		expansion: NewExpansionState(),
		pending:   make(map[string]int),
	}
}

// Load replaces the local collection with the remote ground truth. Expansion
// state survives the refresh: it is keyed by id, not row position.
func (s *Session) Load(ctx context.Context) error {
	ailments, err := s.remote.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ailments: %w", err)
	}

	s.mu.Lock()
	s.ailments = ailments
	s.mu.Unlock()
	return nil
}

// Start establishes the three push subscriptions (created/updated/deleted)
// together and begins reconciling delivered events. Close tears all three
// down together.
func (s *Session) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	created, err := s.bus.Subscribe(ctx, providers.EventChannelAilmentCreated)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to create events: %w", err)
	}
	updated, err := s.bus.Subscribe(ctx, providers.EventChannelAilmentUpdated)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to update events: %w", err)
	}
	deleted, err := s.bus.Subscribe(ctx, providers.EventChannelAilmentDeleted)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to delete events: %w", err)
	}

	s.cancel = cancel
	s.events.Add(1)
	go s.dispatchEvents(ctx, created, updated, deleted)
	return nil
}

// Close tears down all push subscriptions and waits for in-flight work
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	s.events.Wait()
	s.writes.Wait()
}

// Wait blocks until every in-flight remote write has resolved
func (s *Session) Wait() {
	s.writes.Wait()
}

// Ailments returns a snapshot of the local collection
func (s *Session) Ailments() []entities.Ailment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Ailment(nil), s.ailments...)
}

// Rows flattens the current collection with the current expansion state. The
// returned rows hold back references that are only valid until the next
// state transition.
func (s *Session) Rows() []DisplayRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Flatten(s.ailments, s.expansion)
}

// ToggleExpand flips the expansion of an entity and reports the new state
func (s *Session) ToggleExpand(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expansion.Toggle(id)
}

// PendingWrites returns the number of aggregates with in-flight writes. The
// count is advisory UI feedback, not a concurrency-control mechanism.
func (s *Session) PendingWrites() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// IsPending reports whether an aggregate has an in-flight write
func (s *Session) IsPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[id] > 0
}

// SaveAilment applies a mutated aggregate locally, then issues the matching
// remote write (create when the id is new locally, update otherwise). On
// failure the optimistic state is resolved: a failed create removes the
// aggregate, a failed update re-fetches ground truth rather than inverting
// the local patch, since intervening remote changes may have occurred.
func (s *Session) SaveAilment(ctx context.Context, ailment entities.Ailment) {
	s.mu.Lock()
	exists := false
	next := make([]entities.Ailment, len(s.ailments))
	for i, a := range s.ailments {
		if a.ID == ailment.ID {
			next[i] = ailment
			exists = true
		} else {
			next[i] = a
		}
	}
	if !exists {
		next = append(next, ailment)
	}
	s.ailments = next
	s.pending[ailment.ID]++
	s.mu.Unlock()

	s.writes.Add(1)
	go s.resolveSave(ctx, ailment, exists)
}

func (s *Session) resolveSave(ctx context.Context, ailment entities.Ailment, exists bool) {
	defer s.writes.Done()

	var err error
	if exists {
		err = s.remote.Update(ctx, ailment)
	} else {
		err = s.remote.Create(ctx, ailment)
	}

	s.clearPending(ailment.ID)

	if err == nil {
		s.notify(NotifySuccess, "ailment saved")
		return
	}

	log.Warn().Err(err).Str("ailment_id", ailment.ID).Bool("update", exists).
		Msg("Remote write failed, rolling back optimistic state")

	if exists {
		// Re-derive ground truth instead of inverting the local patch
		if loadErr := s.Load(ctx); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Failed to re-fetch after rolled-back update")
		}
	} else {
		s.removeLocal(ailment.ID)
	}
	s.notify(NotifyError, fmt.Sprintf("failed to save ailment: %v", err))
}

// DeleteAilment removes an aggregate locally, then issues the remote delete.
// On failure the pre-delete snapshot is reinstated.
func (s *Session) DeleteAilment(ctx context.Context, id string) {
	s.mu.Lock()
	var snapshot *entities.Ailment
	next := make([]entities.Ailment, 0, len(s.ailments))
	for _, a := range s.ailments {
		if a.ID == id {
			clone := a.Clone()
			snapshot = &clone
			continue
		}
		next = append(next, a)
	}
	s.ailments = next
	s.pending[id]++
	s.mu.Unlock()

	s.writes.Add(1)
	go s.resolveDelete(ctx, id, snapshot)
}

func (s *Session) resolveDelete(ctx context.Context, id string, snapshot *entities.Ailment) {
	defer s.writes.Done()

	err := s.remote.Delete(ctx, id)
	s.clearPending(id)

	if err == nil {
		s.notify(NotifySuccess, "ailment deleted")
		return
	}

	log.Warn().Err(err).Str("ailment_id", id).Msg("Remote delete failed, reinstating aggregate")
	if snapshot != nil {
		s.mu.Lock()
		s.ailments = append(append([]entities.Ailment(nil), s.ailments...), *snapshot)
		s.mu.Unlock()
	}
	s.notify(NotifyError, fmt.Sprintf("failed to delete ailment: %v", err))
}

// CommitFieldEdit resolves a row against the current collection, applies a
// single-field edit and saves the mutated aggregate. A stale row (backing
// aggregate concurrently deleted) is a silent no-op.
func (s *Session) CommitFieldEdit(ctx context.Context, row DisplayRow, field string, value FieldValue) {
	s.mu.Lock()
	owner, _, err := Locate(s.ailments, row)
	if err != nil {
		s.mu.Unlock()
		return
	}
	edited, changed := ApplyFieldEdit(*owner, row, field, value)
	s.mu.Unlock()

	if !changed {
		return
	}
	s.SaveAilment(ctx, edited)
}

// AddChild appends a new default-valued child entity under the given row and
// saves the aggregate: treatments and diagnostics under an ailment row, side
// effects under a treatment or diagnostic row. The parent is expanded so the
// new row is visible.
func (s *Session) AddChild(ctx context.Context, row DisplayRow, childType RowType) {
	s.mu.Lock()
	owner, _, err := Locate(s.ailments, row)
	if err != nil {
		s.mu.Unlock()
		return
	}

	var (
		edited entities.Ailment
		added  bool
	)
	switch childType {
	case RowTypeTreatment:
		if row.RowType == RowTypeAilment {
			edited, added = AddTreatment(*owner, entities.NewTreatment()), true
		}
	case RowTypeDiagnostic:
		if row.RowType == RowTypeAilment {
			edited, added = AddDiagnostic(*owner, entities.NewDiagnostic()), true
		}
	case RowTypeSideEffect:
		switch row.RowType {
		case RowTypeTreatment:
			edited, added = AddSideEffect(*owner, ParentTypeTreatment, row.ID, entities.NewSideEffect())
		case RowTypeDiagnostic:
			edited, added = AddSideEffect(*owner, ParentTypeDiagnostic, row.ID, entities.NewSideEffect())
		}
	}
	if added {
		s.expansion.Expand(row.ID)
	}
	s.mu.Unlock()

	if added {
		s.SaveAilment(ctx, edited)
	}
}

// RemoveRow removes the entity behind a row. An ailment row deletes the
// aggregate; a nested row saves the aggregate without the entity. A stale row
// is a silent no-op.
func (s *Session) RemoveRow(ctx context.Context, row DisplayRow) {
	if row.RowType == RowTypeAilment {
		s.DeleteAilment(ctx, row.ID)
		return
	}

	s.mu.Lock()
	owner, _, err := Locate(s.ailments, row)
	if err != nil {
		s.mu.Unlock()
		return
	}
	edited, removed := RemoveEntity(*owner, row)
	s.mu.Unlock()

	if removed {
		s.SaveAilment(ctx, edited)
	}
}

// dispatchEvents applies push events one at a time, in delivery order
func (s *Session) dispatchEvents(ctx context.Context, created, updated, deleted <-chan *entities.AilmentEvent) {
	defer s.events.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-created:
			if !ok {
				return
			}
			s.applyRemoteCreate(event)
		case event, ok := <-updated:
			if !ok {
				return
			}
			s.applyRemoteUpdate(event)
		case event, ok := <-deleted:
			if !ok {
				return
			}
			s.applyRemoteDelete(event)
		}
	}
}

// applyRemoteCreate appends a remotely created aggregate. An aggregate this
// client already holds (its own echoed create) is ignored, which also makes
// duplicate delivery idempotent.
func (s *Session) applyRemoteCreate(event *entities.AilmentEvent) {
	if event == nil || event.Ailment == nil {
		return
	}

	s.mu.Lock()
	for _, a := range s.ailments {
		if a.ID == event.Ailment.ID {
			s.mu.Unlock()
			return
		}
	}
	s.ailments = append(append([]entities.Ailment(nil), s.ailments...), *event.Ailment)
	s.mu.Unlock()

	name := event.Ailment.Ailment.Name
	if name == "" {
		name = "Unknown"
	}
	s.notify(NotifyInfo, fmt.Sprintf("new ailment added: %s", name))
}

// applyRemoteUpdate replaces the local aggregate unconditionally: the pushed
// version wins over any unconfirmed local edit (last-write-wins).
func (s *Session) applyRemoteUpdate(event *entities.AilmentEvent) {
	if event == nil || event.Ailment == nil {
		return
	}

	s.mu.Lock()
	next := make([]entities.Ailment, len(s.ailments))
	for i, a := range s.ailments {
		if a.ID == event.Ailment.ID {
			next[i] = *event.Ailment
		} else {
			next[i] = a
		}
	}
	s.ailments = next
	s.mu.Unlock()
}

// applyRemoteDelete removes the aggregate if still present; absence means the
// local optimistic delete already removed it and is not an error.
func (s *Session) applyRemoteDelete(event *entities.AilmentEvent) {
	if event == nil || event.Delete == nil || !event.Delete.Success {
		return
	}

	s.mu.Lock()
	removed := false
	next := make([]entities.Ailment, 0, len(s.ailments))
	for _, a := range s.ailments {
		if a.ID == event.Delete.ID {
			removed = true
			continue
		}
		next = append(next, a)
	}
	s.ailments = next
	s.mu.Unlock()

	if removed {
		s.notify(NotifyInfo, "ailment deleted by another user")
	}
}

func (s *Session) clearPending(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[id] <= 1 {
		delete(s.pending, id)
	} else {
		s.pending[id]--
	}
}

func (s *Session) removeLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entities.Ailment, 0, len(s.ailments))
	for _, a := range s.ailments {
		if a.ID != id {
			next = append(next, a)
		}
	}
	s.ailments = next
}
