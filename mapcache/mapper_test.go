package mapcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeBackend is an in-memory Backend used for Mapper tests. It records
// every call so tests can assert the sync worker mirrors RCU writes.
type fakeBackend struct {
	mu           sync.Mutex
	nextID       int
	createErr    error
	renamedAreas []AreaID
	deletedAreas []AreaID
	failUpdates  bool
}

func (f *fakeBackend) newID(prefix string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeBackend) ListAreas(ctx context.Context) ([]Area, error) { return nil, nil }
func (f *fakeBackend) GetArea(ctx context.Context, id AreaID) (AreaWithDetails, error) {
	return AreaWithDetails{}, nil
}

func (f *fakeBackend) CreateArea(ctx context.Context, req CreateAreaRequest) (Area, error) {
	if f.createErr != nil {
		return Area{}, f.createErr
	}
	return Area{ID: AreaID(f.newID("area")), Name: req.Name}, nil
}

func (f *fakeBackend) UpdateArea(ctx context.Context, id AreaID, updates AreaUpdates) error {
	if f.failUpdates {
		return errors.New("simulated failure")
	}
	f.mu.Lock()
	f.renamedAreas = append(f.renamedAreas, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) DeleteArea(ctx context.Context, id AreaID) error {
	f.mu.Lock()
	f.deletedAreas = append(f.deletedAreas, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) SetAreaProperty(ctx context.Context, id AreaID, name, value string) error {
	return nil
}
func (f *fakeBackend) DeleteAreaProperty(ctx context.Context, id AreaID, name string) error {
	return nil
}
func (f *fakeBackend) UpdateRoom(ctx context.Context, key RoomKey, updates RoomUpdates) error {
	return nil
}
func (f *fakeBackend) DeleteRoom(ctx context.Context, key RoomKey) error { return nil }
func (f *fakeBackend) SetRoomProperty(ctx context.Context, key RoomKey, name, value string) error {
	return nil
}
func (f *fakeBackend) DeleteRoomProperty(ctx context.Context, key RoomKey, name string) error {
	return nil
}
func (f *fakeBackend) CreateExit(ctx context.Context, key RoomKey, args ExitArgs) (Exit, error) {
	return Exit{ID: ExitID(f.newID("exit")), FromDirection: args.FromDirection}, nil
}
func (f *fakeBackend) UpdateExit(ctx context.Context, areaID AreaID, exitID ExitID, updates ExitUpdates) error {
	return nil
}
func (f *fakeBackend) DeleteExit(ctx context.Context, areaID AreaID, exitID ExitID) error {
	return nil
}
func (f *fakeBackend) CreateLabel(ctx context.Context, areaID AreaID, args LabelArgs) (Label, error) {
	return Label{ID: LabelID(f.newID("label"))}, nil
}
func (f *fakeBackend) UpdateLabel(ctx context.Context, areaID AreaID, labelID LabelID, updates LabelUpdates) error {
	return nil
}
func (f *fakeBackend) DeleteLabel(ctx context.Context, areaID AreaID, labelID LabelID) error {
	return nil
}
func (f *fakeBackend) CreateShape(ctx context.Context, areaID AreaID, args ShapeArgs) (Shape, error) {
	return Shape{ID: ShapeID(f.newID("shape"))}, nil
}
func (f *fakeBackend) UpdateShape(ctx context.Context, areaID AreaID, shapeID ShapeID, updates ShapeUpdates) error {
	return nil
}
func (f *fakeBackend) DeleteShape(ctx context.Context, areaID AreaID, shapeID ShapeID) error {
	return nil
}

func TestMapperCreateAreaInsertsIntoSnapshot(t *testing.T) {
	m := NewMapper(&fakeBackend{})
	defer m.Close()

	id, err := m.CreateArea(context.Background(), "Midgaard")
	if err != nil {
		t.Fatalf("CreateArea() error = %v", err)
	}
	area, ok := m.Current().GetArea(id)
	if !ok {
		t.Fatal("expected the new area to be present in the current snapshot")
	}
	if area.Name() != "Midgaard" {
		t.Fatalf("got name %q, want %q", area.Name(), "Midgaard")
	}
}

func TestMapperRenameAreaIsLocalFirstThenSynced(t *testing.T) {
	backend := &fakeBackend{}
	m := NewMapper(backend)
	defer m.Close()

	id, err := m.CreateArea(context.Background(), "Old Name")
	if err != nil {
		t.Fatalf("CreateArea() error = %v", err)
	}

	m.RenameArea(id, "New Name")

	area, _ := m.Current().GetArea(id)
	if area.Name() != "New Name" {
		t.Fatalf("expected local snapshot to already reflect the rename, got %q", area.Name())
	}

	ok, err := m.WaitForSyncCompletion(2 * time.Second)
	if err != nil {
		t.Fatalf("WaitForSyncCompletion() error = %v", err)
	}
	if !ok {
		t.Fatal("expected sync to complete before the timeout")
	}
}

func TestMapperWaitForSyncCompletionReportsFailure(t *testing.T) {
	backend := &fakeBackend{failUpdates: true}
	m := NewMapper(backend)
	defer m.Close()

	id, err := m.CreateArea(context.Background(), "Area")
	if err != nil {
		t.Fatalf("CreateArea() error = %v", err)
	}
	m.RenameArea(id, "Renamed")

	_, err = m.WaitForSyncCompletion(2 * time.Second)
	if !errors.Is(err, ErrSyncFailed) {
		t.Fatalf("got %v, want ErrSyncFailed", err)
	}
}

func TestMapperDeleteAreaRemovesFromSnapshot(t *testing.T) {
	m := NewMapper(&fakeBackend{})
	defer m.Close()

	id, err := m.CreateArea(context.Background(), "Area")
	if err != nil {
		t.Fatalf("CreateArea() error = %v", err)
	}
	m.DeleteArea(id)

	if _, ok := m.Current().GetArea(id); ok {
		t.Fatal("expected area to be removed from the local snapshot immediately")
	}
}

func TestMapperUpsertRoomThenCreateExitRoundTrips(t *testing.T) {
	m := NewMapper(&fakeBackend{})
	defer m.Close()

	areaID, err := m.CreateArea(context.Background(), "Area")
	if err != nil {
		t.Fatalf("CreateArea() error = %v", err)
	}
	key := RoomKey{AreaID: areaID, RoomNumber: 1}
	m.UpsertRoom(key, RoomUpdates{Title: strp("Start Room")})

	area, _ := m.Current().GetArea(areaID)
	room, ok := area.GetRoom(1)
	if !ok || room.Title != "Start Room" {
		t.Fatalf("expected room 1 to exist with title set, got %+v", room)
	}

	exitID, err := m.CreateExit(context.Background(), key, ExitArgs{FromDirection: North})
	if err != nil {
		t.Fatalf("CreateExit() error = %v", err)
	}
	area, _ = m.Current().GetArea(areaID)
	room, _ = area.GetRoom(1)
	if len(room.Exits) != 1 || room.Exits[0].ID != exitID {
		t.Fatalf("expected the new exit to be present on room 1, got %+v", room.Exits)
	}
}
