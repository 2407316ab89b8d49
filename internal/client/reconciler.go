// Package client implements the consumer side of the team event stream: a
// reconciler that keeps a local view of one day's tasks consistent with the
// server, and a listener that feeds it from the websocket.
package client

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"taskboard-backend/internal/events"
	"taskboard-backend/internal/logger"

	"github.com/google/uuid"
)

// ViewKey identifies one server query: a business day plus optional filters.
// Fetch results are only applied to the view they were requested for.
type ViewKey struct {
	Date          string
	EmployeeID    *uuid.UUID
	WorkstationID *uuid.UUID
}

// String renders the key for comparisons and logging
func (k ViewKey) String() string {
	s := k.Date
	if k.EmployeeID != nil {
		s += "|emp=" + k.EmployeeID.String()
	}
	if k.WorkstationID != nil {
		s += "|ws=" + k.WorkstationID.String()
	}
	return s
}

// Task is the reconciler's local representation of one daily task
type Task struct {
	ID           uuid.UUID
	TemplateID   uuid.UUID
	EmployeeID   uuid.UUID
	EmployeeName string
	Title        string
	Date         string
	IsCompleted  bool
}

// FetchFunc retrieves the authoritative task list for a view from the server
type FetchFunc func(ctx context.Context, key ViewKey) ([]Task, error)

// Reconciler maintains a local snapshot of one view and converges it with the
// server. Three inputs drive it: fetch results, the caller's own in-flight
// mutations, and team events from the listener. Events received while the
// caller has mutations in flight never clobber optimistic local state; the
// view is refetched once the last mutation settles.
type Reconciler struct {
	mu      sync.Mutex
	key     ViewKey
	version uint64
	tasks   map[uuid.UUID]Task
	pending map[uuid.UUID]bool
	dirty   bool
	selfID  uuid.UUID
	fetch   FetchFunc
	log     *logger.Logger
}

// NewReconciler creates a reconciler for the given user. selfID powers the
// own-assignment debounce: an assignment event echoing the user's own pending
// move does not trigger a redundant refetch.
func NewReconciler(selfID uuid.UUID, fetch FetchFunc) *Reconciler {
	return &Reconciler{
		version: 1,
		tasks:   make(map[uuid.UUID]Task),
		pending: make(map[uuid.UUID]bool),
		dirty:   true,
		selfID:  selfID,
		fetch:   fetch,
		log:     logger.ForComponent("client.reconciler"),
	}
}

// SetView switches the active view. The snapshot is cleared and any fetch
// issued for the previous view is discarded when it lands.
func (r *Reconciler) SetView(key ViewKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if key.String() == r.key.String() {
		return
	}
	r.key = key
	r.version++
	r.tasks = make(map[uuid.UUID]Task)
	r.dirty = true
}

// View returns the active view key
func (r *Reconciler) View() ViewKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.key
}

// Snapshot returns the current local tasks ordered by title then ID
func (r *Reconciler) Snapshot() []Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// Dirty reports whether the view needs a refetch
func (r *Reconciler) Dirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

// Begin records that a mutation of the given task is in flight. While any
// mutation is pending, fetch results and item-level events are held off.
func (r *Reconciler) Begin(taskID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[taskID] = true
}

// Resolve settles a pending mutation with the server's authoritative result
func (r *Reconciler) Resolve(taskID uuid.UUID, updated Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, taskID)
	if updated.Date == r.key.Date {
		r.tasks[updated.ID] = updated
	} else {
		delete(r.tasks, taskID)
	}
}

// Fail settles a pending mutation that was rejected, such as a reassignment
// conflict. The view is marked dirty so the next refresh restores server truth.
func (r *Reconciler) Fail(taskID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, taskID)
	r.dirty = true
}

// InvalidateAll marks the view dirty. The listener calls this after a
// reconnect, since events may have been missed while disconnected.
func (r *Reconciler) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = true
}

// HandleEvent folds one team event into the view using the narrowest
// invalidation that keeps it consistent. Unknown event types are ignored so
// newer servers can ship new kinds without breaking older clients.
func (r *Reconciler) HandleEvent(env events.Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch env.Type {
	case events.TypeTaskUpdated:
		if env.Updated == nil {
			return
		}
		if env.IsBatch() {
			r.dirty = true
			return
		}
		if r.pending[env.Updated.TaskID] {
			// Our own mutation; Resolve will carry the result
			return
		}
		if task, ok := r.tasks[env.Updated.TaskID]; ok {
			task.IsCompleted = env.Updated.IsCompleted
			r.tasks[task.ID] = task
		}

	case events.TypeTaskAssigned:
		if env.Assigned == nil {
			return
		}
		if env.Assigned.EmployeeID == r.selfID && r.pending[env.Assigned.TaskID] {
			// Echo of our own in-flight move
			return
		}
		if env.Assigned.TaskDate == "" || env.Assigned.TaskDate == r.key.Date {
			r.dirty = true
		}

	default:
		r.log.WithField("type", env.Type).Debug("ignoring unknown event type")
	}
}

// Refresh refetches the view when it is dirty and no mutation is in flight.
// Results for a view that changed mid-fetch are discarded.
func (r *Reconciler) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if !r.dirty || len(r.pending) > 0 {
		r.mu.Unlock()
		return nil
	}
	key := r.key
	version := r.version
	r.mu.Unlock()

	tasks, err := r.fetch(ctx, key)
	if err != nil {
		return fmt.Errorf("fetch view %s: %w", key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version != version {
		return nil
	}
	if len(r.pending) > 0 {
		// A mutation started mid-fetch; keep dirty and retry later
		return nil
	}
	r.tasks = make(map[uuid.UUID]Task, len(tasks))
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	r.dirty = false
	return nil
}
