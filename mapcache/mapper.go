/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mapcache

import (
	"context"
	"sync/atomic"
	"time"
)

// SyncStats counts background sync operations for diagnostics.
// pending = sent - succeeded - failed.
type SyncStats struct {
	sent      atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// Sent returns the number of sync operations enqueued so far.
func (s *SyncStats) Sent() uint64 { return s.sent.Load() }

// Succeeded returns the number of sync operations the backend accepted.
func (s *SyncStats) Succeeded() uint64 { return s.succeeded.Load() }

// Failed returns the number of sync operations the backend rejected.
func (s *SyncStats) Failed() uint64 { return s.failed.Load() }

// Pending returns the number of sync operations still in flight.
func (s *SyncStats) Pending() uint64 {
	return s.Sent() - s.Succeeded() - s.Failed()
}

// syncOp is one background mutation queued for the backend.
type syncOp struct {
	apply func(ctx context.Context, backend Backend) error
}

// Mapper owns the current AtlasCache snapshot and keeps it synced to a
// Backend in the background. Reads are lock-free; writes apply to the
// local snapshot immediately (read-copy-update) and are mirrored to the
// backend by a dedicated worker goroutine draining syncCh.
type Mapper struct {
	backend Backend
	atlas   atomic.Pointer[AtlasCache]
	syncCh  chan syncOp
	stats   *SyncStats
	done    chan struct{}
}

// NewMapper starts a Mapper backed by backend, spawning its background
// sync worker.
func NewMapper(backend Backend) *Mapper {
	m := &Mapper{
		backend: backend,
		syncCh:  make(chan syncOp, 256),
		stats:   &SyncStats{},
		done:    make(chan struct{}),
	}
	m.atlas.Store(NewAtlasCache(nil))
	go m.runSyncWorker()
	return m
}

// Close stops the background sync worker. Pending operations are dropped.
func (m *Mapper) Close() {
	close(m.done)
}

// Stats returns the Mapper's sync diagnostics counters.
func (m *Mapper) Stats() *SyncStats { return m.stats }

// Current returns the Mapper's current atlas snapshot.
func (m *Mapper) Current() *AtlasCache {
	return m.atlas.Load()
}

// rcu atomically replaces the current snapshot with fn's result, computed
// from the snapshot observed at call time. Matches the teacher's
// single-writer-per-resource discipline: callers never hold a lock across
// fn because there isn't one to hold.
func (m *Mapper) rcu(fn func(*AtlasCache) *AtlasCache) {
	current := m.atlas.Load()
	next := fn(current)
	m.atlas.Store(next)
}

func (m *Mapper) enqueueSync(apply func(ctx context.Context, backend Backend) error) {
	m.stats.sent.Add(1)
	select {
	case m.syncCh <- syncOp{apply: apply}:
	default:
		// Channel is saturated; drop and count as failed rather than
		// blocking the caller's RCU-first write.
		m.stats.failed.Add(1)
		logErrorf("mapcache: sync queue full, dropping operation")
	}
}

func (m *Mapper) runSyncWorker() {
	for {
		select {
		case op := <-m.syncCh:
			ctx := context.Background()
			if err := op.apply(ctx, m.backend); err != nil {
				m.stats.failed.Add(1)
				logErrorf("mapcache: sync operation failed: %v", err)
				continue
			}
			m.stats.succeeded.Add(1)
		case <-m.done:
			return
		}
	}
}

// WaitForSyncCompletion polls the sync stats until pending reaches zero or
// timeout elapses (0 = no timeout). Returns ErrSyncFailed if any operation
// failed, nil on a clean drain, and nil with ok=false on timeout.
func (m *Mapper) WaitForSyncCompletion(timeout time.Duration) (ok bool, err error) {
	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		pending := m.stats.Pending()
		failed := m.stats.Failed()
		if pending == 0 {
			if failed > 0 {
				return true, ErrSyncFailed
			}
			return true, nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return false, nil
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// LoadAllAreas replaces the current snapshot with a freshly fetched atlas.
func (m *Mapper) LoadAllAreas(ctx context.Context) error {
	areas, err := m.backend.ListAreas(ctx)
	if err != nil {
		return err
	}
	next := make(map[AreaID]*AreaCache, len(areas))
	for _, area := range areas {
		details, err := m.backend.GetArea(ctx, area.ID)
		if err != nil {
			continue
		}
		next[area.ID] = NewAreaCache(details)
	}
	m.atlas.Store(NewAtlasCache(next))
	return nil
}

// CreateArea blocks on the backend to obtain the new area's ID, then
// inserts it into the local snapshot.
func (m *Mapper) CreateArea(ctx context.Context, name string) (AreaID, error) {
	area, err := m.backend.CreateArea(ctx, CreateAreaRequest{Name: name})
	if err != nil {
		return "", err
	}
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		return atlas.WithArea(area.ID, NewAreaCache(AreaWithDetails{Area: area}))
	})
	return area.ID, nil
}

// DeleteArea removes an area from the local snapshot immediately and
// enqueues the deletion for background sync.
func (m *Mapper) DeleteArea(id AreaID) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		if _, ok := atlas.GetArea(id); !ok {
			return atlas
		}
		return atlas.WithoutArea(id)
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.DeleteArea(ctx, id)
	})
}

// RenameArea updates an area's name in the local snapshot immediately and
// enqueues the rename for background sync.
func (m *Mapper) RenameArea(id AreaID, name string) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(id)
		if !ok {
			return atlas
		}
		return atlas.WithArea(id, area.Rename(name))
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.UpdateArea(ctx, id, AreaUpdates{Name: &name})
	})
}

// SetAreaProperty sets an area property in the local snapshot immediately
// and enqueues the write for background sync.
func (m *Mapper) SetAreaProperty(id AreaID, name, value string) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(id)
		if !ok {
			return atlas
		}
		return atlas.WithArea(id, area.SetProperty(name, value))
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.SetAreaProperty(ctx, id, name, value)
	})
}

// DeleteAreaProperty removes an area property in the local snapshot
// immediately and enqueues the deletion for background sync.
func (m *Mapper) DeleteAreaProperty(id AreaID, name string) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(id)
		if !ok {
			return atlas
		}
		return atlas.WithArea(id, area.DeleteProperty(name))
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.DeleteAreaProperty(ctx, id, name)
	})
}

// UpsertRoom applies updates to (or seeds) a room in the local snapshot
// immediately and enqueues the write for background sync.
func (m *Mapper) UpsertRoom(key RoomKey, updates RoomUpdates) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		return atlas.WithArea(key.AreaID, area.UpsertRoom(key.RoomNumber, updates))
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.UpdateRoom(ctx, key, updates)
	})
}

// DeleteRoom removes a room from the local snapshot immediately and
// enqueues the deletion for background sync.
func (m *Mapper) DeleteRoom(key RoomKey) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		return atlas.WithArea(key.AreaID, area.DeleteRoom(key.RoomNumber))
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.DeleteRoom(ctx, key)
	})
}

// SetRoomProperty sets a room property in the local snapshot immediately
// and enqueues the write for background sync. A missing room is a no-op
// locally; the sync is still enqueued so a concurrently-created room on
// another client converges once list_all_areas catches up.
func (m *Mapper) SetRoomProperty(key RoomKey, name, value string) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		updated, err := area.SetRoomProperty(key.RoomNumber, name, value)
		if err != nil {
			return atlas
		}
		return atlas.WithArea(key.AreaID, updated)
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.SetRoomProperty(ctx, key, name, value)
	})
}

// DeleteRoomProperty removes a room property in the local snapshot
// immediately and enqueues the deletion for background sync.
func (m *Mapper) DeleteRoomProperty(key RoomKey, name string) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		updated, err := area.DeleteRoomProperty(key.RoomNumber, name)
		if err != nil {
			return atlas
		}
		return atlas.WithArea(key.AreaID, updated)
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.DeleteRoomProperty(ctx, key, name)
	})
}

// CreateExit blocks on the backend to obtain the new exit's ID, then
// inserts it into the local snapshot.
func (m *Mapper) CreateExit(ctx context.Context, key RoomKey, args ExitArgs) (ExitID, error) {
	exit, err := m.backend.CreateExit(ctx, key, args)
	if err != nil {
		return "", err
	}
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		updated, err := area.UpsertExit(key.RoomNumber, exit)
		if err != nil {
			return atlas
		}
		return atlas.WithArea(key.AreaID, updated)
	})
	return exit.ID, nil
}

// UpdateExit applies updates to an exit in the local snapshot immediately
// and enqueues the write for background sync.
func (m *Mapper) UpdateExit(key RoomKey, exitID ExitID, updates ExitUpdates) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		room, ok := area.GetRoom(key.RoomNumber)
		if !ok {
			return atlas
		}
		var existing Exit
		found := false
		for _, e := range room.Exits {
			if e.ID == exitID {
				existing = e
				found = true
				break
			}
		}
		if !found {
			return atlas
		}
		updated, err := area.UpsertExit(key.RoomNumber, updates.Apply(existing))
		if err != nil {
			return atlas
		}
		return atlas.WithArea(key.AreaID, updated)
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.UpdateExit(ctx, key.AreaID, exitID, updates)
	})
}

// DeleteExit removes an exit from the local snapshot immediately and
// enqueues the deletion for background sync.
func (m *Mapper) DeleteExit(key RoomKey, exitID ExitID) {
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(key.AreaID)
		if !ok {
			return atlas
		}
		updated, err := area.DeleteExit(key.RoomNumber, exitID)
		if err != nil {
			return atlas
		}
		return atlas.WithArea(key.AreaID, updated)
	})
	m.enqueueSync(func(ctx context.Context, backend Backend) error {
		return backend.DeleteExit(ctx, key.AreaID, exitID)
	})
}

// CreateLabel blocks on the backend to obtain the new label's ID, then
// inserts it into the local snapshot.
func (m *Mapper) CreateLabel(ctx context.Context, areaID AreaID, args LabelArgs) (LabelID, error) {
	label, err := m.backend.CreateLabel(ctx, areaID, args)
	if err != nil {
		return "", err
	}
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(areaID)
		if !ok {
			return atlas
		}
		return atlas.WithArea(areaID, area.UpsertLabel(label.ID, label))
	})
	return label.ID, nil
}

// CreateShape blocks on the backend to obtain the new shape's ID, then
// inserts it into the local snapshot.
func (m *Mapper) CreateShape(ctx context.Context, areaID AreaID, args ShapeArgs) (ShapeID, error) {
	shape, err := m.backend.CreateShape(ctx, areaID, args)
	if err != nil {
		return "", err
	}
	m.rcu(func(atlas *AtlasCache) *AtlasCache {
		area, ok := atlas.GetArea(areaID)
		if !ok {
			return atlas
		}
		return atlas.WithArea(areaID, area.UpsertShape(shape.ID, shape))
	})
	return shape.ID, nil
}
