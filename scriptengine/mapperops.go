/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

import (
	"context"

	"github.com/dop251/goja"

	"smudgy/mapcache"
)

// registerMapperOps installs smudgy_mapper's surface: area/room lookups
// return live-data JS objects built from an AreaCache/Room snapshot,
// setters forward straight to the Mapper's RCU writes. Without a Mapper,
// __op_mapper_list_area_ids returns no ids and every other op returns
// ErrMapperNotEnabled, which
// goja's (T, error) return convention turns into a thrown JS exception —
// unlike the session ops, the original's mapper ops genuinely throw
// (MapperError implements deno_error::JsError) rather than silently
// no-op, so that contract is preserved here.
func (e *Engine) registerMapperOps() {
	rt := e.runtime

	must := func(name string, fn any) {
		if err := rt.Set(name, fn); err != nil {
			logErrorf("scriptengine: register op %s: %v", name, err)
		}
	}

	must("__op_mapper_list_area_ids", func() []string {
		if e.mapper == nil {
			return nil
		}
		areas := e.mapper.Current().Areas()
		ids := make([]string, 0, len(areas))
		for id := range areas {
			ids = append(ids, string(id))
		}
		return ids
	})

	must("__op_mapper_create_area", func(name string) (*goja.Object, error) {
		if e.mapper == nil {
			return nil, ErrMapperNotEnabled
		}
		id, err := e.mapper.CreateArea(context.Background(), name)
		if err != nil {
			return nil, err
		}
		area, ok := e.mapper.Current().GetArea(id)
		if !ok {
			return nil, ErrAreaNotFound
		}
		return e.newAreaObject(area), nil
	})

	must("__op_mapper_get_area_by_id", func(id string) (*goja.Object, error) {
		if e.mapper == nil {
			return nil, ErrMapperNotEnabled
		}
		area, ok := e.mapper.Current().GetArea(mapcache.AreaID(id))
		if !ok {
			return nil, ErrAreaNotFound
		}
		return e.newAreaObject(area), nil
	})

	must("__op_mapper_rename_area", func(id, name string) error {
		if e.mapper == nil {
			return ErrMapperNotEnabled
		}
		e.mapper.RenameArea(mapcache.AreaID(id), name)
		return nil
	})

	must("__op_mapper_set_room_title", func(areaID string, roomNumber int, title string) error {
		return e.upsertRoom(areaID, roomNumber, mapcache.RoomUpdates{Title: &title})
	})
	must("__op_mapper_set_room_description", func(areaID string, roomNumber int, description string) error {
		return e.upsertRoom(areaID, roomNumber, mapcache.RoomUpdates{Description: &description})
	})
	must("__op_mapper_set_room_color", func(areaID string, roomNumber int, color string) error {
		return e.upsertRoom(areaID, roomNumber, mapcache.RoomUpdates{Color: &color})
	})
	must("__op_mapper_set_room_level", func(areaID string, roomNumber int, level int) error {
		l := int32(level)
		return e.upsertRoom(areaID, roomNumber, mapcache.RoomUpdates{Level: &l})
	})
	must("__op_mapper_set_room_x", func(areaID string, roomNumber int, x float64) error {
		v := float32(x)
		return e.upsertRoom(areaID, roomNumber, mapcache.RoomUpdates{X: &v})
	})
	must("__op_mapper_set_room_y", func(areaID string, roomNumber int, y float64) error {
		v := float32(y)
		return e.upsertRoom(areaID, roomNumber, mapcache.RoomUpdates{Y: &v})
	})
	must("__op_mapper_set_room_property", func(areaID string, roomNumber int, name, value string) error {
		if e.mapper == nil {
			return ErrMapperNotEnabled
		}
		key := mapcache.RoomKey{AreaID: mapcache.AreaID(areaID), RoomNumber: mapcache.RoomNumber(roomNumber)}
		e.mapper.SetRoomProperty(key, name, value)
		return nil
	})
}

func (e *Engine) upsertRoom(areaID string, roomNumber int, updates mapcache.RoomUpdates) error {
	if e.mapper == nil {
		return ErrMapperNotEnabled
	}
	key := mapcache.RoomKey{AreaID: mapcache.AreaID(areaID), RoomNumber: mapcache.RoomNumber(roomNumber)}
	e.mapper.UpsertRoom(key, updates)
	return nil
}

// newAreaObject builds a live JS view of area: data fields snapshot the
// immutable AreaCache directly, and getRoom/getProperty are closures
// bound over the same snapshot — cheap and safe since every AreaCache
// value is itself immutable (a fresh one replaces it on every mutation).
func (e *Engine) newAreaObject(area *mapcache.AreaCache) *goja.Object {
	rt := e.runtime
	obj := rt.NewObject()
	obj.Set("id", string(area.ID()))
	obj.Set("name", area.Name())
	obj.Set("rev", area.Rev())

	rooms := area.GetRooms()
	roomNumbers := make([]int, len(rooms))
	for i, r := range rooms {
		roomNumbers[i] = int(r.RoomNumber)
	}
	obj.Set("roomNumbers", roomNumbers)

	obj.Set("getRoom", func(call goja.FunctionCall) goja.Value {
		n := call.Argument(0).ToInteger()
		room, ok := area.GetRoom(mapcache.RoomNumber(n))
		if !ok {
			return goja.Undefined()
		}
		return e.newRoomObject(room)
	})
	obj.Set("getProperty", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		v, ok := area.GetProperty(name)
		if !ok {
			return goja.Undefined()
		}
		return rt.ToValue(v)
	})
	return obj
}

func (e *Engine) newRoomObject(room mapcache.Room) *goja.Object {
	rt := e.runtime
	obj := rt.NewObject()
	obj.Set("roomNumber", int(room.RoomNumber))
	obj.Set("title", room.Title)
	obj.Set("description", room.Description)
	obj.Set("color", room.Color)
	obj.Set("level", room.Level)
	obj.Set("x", room.X)
	obj.Set("y", room.Y)
	obj.Set("getProperty", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		v, ok := room.Properties[name]
		if !ok {
			return goja.Undefined()
		}
		return rt.ToValue(v)
	})
	return obj
}
