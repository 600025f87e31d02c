/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mapcache

import "sort"

// AreaCache is an immutable snapshot of one area: its rooms, properties,
// labels, shapes, and the RoomConnections derived from them. Every
// mutating method returns a new AreaCache with rev incremented; the
// receiver is never modified. Callers share *AreaCache values freely
// across goroutines without locking.
type AreaCache struct {
	id             AreaID
	name           string
	rev            int64
	roomsByNumber  map[RoomNumber]Room
	rooms          []RoomNumber // stable insertion order
	roomConnections []RoomConnection
	properties     map[string]string
	labels         map[LabelID]Label
	shapes         map[ShapeID]Shape
	maxRoomNumber  RoomNumber
}

// NewAreaCache builds an AreaCache from a backend AreaWithDetails payload.
func NewAreaCache(details AreaWithDetails) *AreaCache {
	c := &AreaCache{
		id:            details.Area.ID,
		name:          details.Area.Name,
		rev:           details.Area.Rev,
		roomsByNumber: map[RoomNumber]Room{},
		properties:    map[string]string{},
		labels:        map[LabelID]Label{},
		shapes:        map[ShapeID]Shape{},
	}
	for _, p := range details.Properties {
		c.properties[p.Name] = p.Value
	}
	for _, l := range details.Labels {
		c.labels[l.ID] = l
	}
	for _, s := range details.Shapes {
		c.shapes[s.ID] = s
	}
	for _, r := range details.Rooms {
		c.roomsByNumber[r.RoomNumber] = r
		c.rooms = append(c.rooms, r.RoomNumber)
		if r.RoomNumber > c.maxRoomNumber {
			c.maxRoomNumber = r.RoomNumber
		}
	}
	c.roomConnections = buildRoomConnections(c.id, c.roomsByNumber)
	return c
}

// clone produces a shallow copy of c with fresh top-level maps/slices the
// caller is free to mutate before handing the result back out as the new
// immutable snapshot.
func (c *AreaCache) clone() *AreaCache {
	n := &AreaCache{
		id:            c.id,
		name:          c.name,
		rev:           c.rev + 1,
		roomsByNumber: make(map[RoomNumber]Room, len(c.roomsByNumber)),
		rooms:         append([]RoomNumber(nil), c.rooms...),
		properties:    make(map[string]string, len(c.properties)),
		labels:        make(map[LabelID]Label, len(c.labels)),
		shapes:        make(map[ShapeID]Shape, len(c.shapes)),
		maxRoomNumber: c.maxRoomNumber,
	}
	for k, v := range c.roomsByNumber {
		n.roomsByNumber[k] = v
	}
	for k, v := range c.properties {
		n.properties[k] = v
	}
	for k, v := range c.labels {
		n.labels[k] = v
	}
	for k, v := range c.shapes {
		n.shapes[k] = v
	}
	return n
}

// ID returns the area's identifier.
func (c *AreaCache) ID() AreaID { return c.id }

// Name returns the area's display name.
func (c *AreaCache) Name() string { return c.name }

// Rev returns the area's revision counter, incremented on every mutation.
func (c *AreaCache) Rev() int64 { return c.rev }

// MaxRoomNumber returns the highest RoomNumber currently in the area.
func (c *AreaCache) MaxRoomNumber() RoomNumber { return c.maxRoomNumber }

// GetRoom returns the room at number and whether it exists.
func (c *AreaCache) GetRoom(number RoomNumber) (Room, bool) {
	r, ok := c.roomsByNumber[number]
	return r, ok
}

// GetRooms returns every room in the area, in stable insertion order.
func (c *AreaCache) GetRooms() []Room {
	out := make([]Room, 0, len(c.rooms))
	for _, n := range c.rooms {
		out = append(out, c.roomsByNumber[n])
	}
	return out
}

// GetProperty returns the named area property and whether it is set.
func (c *AreaCache) GetProperty(name string) (string, bool) {
	v, ok := c.properties[name]
	return v, ok
}

// GetRoomConnections returns the connections derived from this snapshot's
// rooms the last time they changed.
func (c *AreaCache) GetRoomConnections() []RoomConnection {
	return c.roomConnections
}

// Rename returns a new snapshot with the area's name changed.
func (c *AreaCache) Rename(name string) *AreaCache {
	n := c.clone()
	n.name = name
	return n
}

// SetProperty returns a new snapshot with the named area property set.
func (c *AreaCache) SetProperty(name, value string) *AreaCache {
	n := c.clone()
	n.properties[name] = value
	return n
}

// DeleteProperty returns a new snapshot with the named area property removed.
func (c *AreaCache) DeleteProperty(name string) *AreaCache {
	n := c.clone()
	delete(n.properties, name)
	return n
}

// UpsertRoom returns a new snapshot with updates applied to (or seeding) the
// room at number, and its room_connections recomputed.
func (c *AreaCache) UpsertRoom(number RoomNumber, updates RoomUpdates) *AreaCache {
	n := c.clone()
	existing, ok := n.roomsByNumber[number]
	if !ok {
		existing = Room{RoomNumber: number}
		n.rooms = append(n.rooms, number)
	}
	n.roomsByNumber[number] = updates.Apply(existing)
	if number > n.maxRoomNumber {
		n.maxRoomNumber = number
	}
	n.roomConnections = buildRoomConnections(n.id, n.roomsByNumber)
	return n
}

// DeleteRoom returns a new snapshot with the room at number removed.
func (c *AreaCache) DeleteRoom(number RoomNumber) *AreaCache {
	n := c.clone()
	delete(n.roomsByNumber, number)
	for i, r := range n.rooms {
		if r == number {
			n.rooms = append(n.rooms[:i], n.rooms[i+1:]...)
			break
		}
	}
	n.roomConnections = buildRoomConnections(n.id, n.roomsByNumber)
	return n
}

// SetRoomProperty returns a new snapshot with the named property set on the
// room at number. Returns ErrRoomNotFound if the room doesn't exist.
func (c *AreaCache) SetRoomProperty(number RoomNumber, name, value string) (*AreaCache, error) {
	room, ok := c.roomsByNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	n := c.clone()
	room = n.roomsByNumber[number]
	if room.Properties == nil {
		room.Properties = map[string]string{}
	} else {
		props := make(map[string]string, len(room.Properties)+1)
		for k, v := range room.Properties {
			props[k] = v
		}
		room.Properties = props
	}
	room.Properties[name] = value
	n.roomsByNumber[number] = room
	return n, nil
}

// DeleteRoomProperty returns a new snapshot with the named property removed
// from the room at number. Returns ErrRoomNotFound if the room doesn't exist.
func (c *AreaCache) DeleteRoomProperty(number RoomNumber, name string) (*AreaCache, error) {
	room, ok := c.roomsByNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	n := c.clone()
	room = n.roomsByNumber[number]
	props := make(map[string]string, len(room.Properties))
	for k, v := range room.Properties {
		if k != name {
			props[k] = v
		}
	}
	room.Properties = props
	n.roomsByNumber[number] = room
	return n, nil
}

// UpsertExit returns a new snapshot with exit added to (or replacing an
// existing exit with the same ID in) the room at number, and its
// room_connections recomputed. Returns ErrRoomNotFound if the room doesn't
// exist.
func (c *AreaCache) UpsertExit(number RoomNumber, exit Exit) (*AreaCache, error) {
	room, ok := c.roomsByNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	n := c.clone()
	room = n.roomsByNumber[number]
	exits := make([]Exit, 0, len(room.Exits)+1)
	replaced := false
	for _, e := range room.Exits {
		if e.ID == exit.ID {
			exits = append(exits, exit)
			replaced = true
		} else {
			exits = append(exits, e)
		}
	}
	if !replaced {
		exits = append(exits, exit)
	}
	room.Exits = exits
	n.roomsByNumber[number] = room
	n.roomConnections = buildRoomConnections(n.id, n.roomsByNumber)
	return n, nil
}

// DeleteExit returns a new snapshot with the named exit removed from the
// room at number. Returns ErrRoomNotFound or ErrExitNotFound.
func (c *AreaCache) DeleteExit(number RoomNumber, exitID ExitID) (*AreaCache, error) {
	room, ok := c.roomsByNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	found := false
	exits := make([]Exit, 0, len(room.Exits))
	for _, e := range room.Exits {
		if e.ID == exitID {
			found = true
			continue
		}
		exits = append(exits, e)
	}
	if !found {
		return nil, ErrExitNotFound
	}
	n := c.clone()
	room = n.roomsByNumber[number]
	room.Exits = exits
	n.roomsByNumber[number] = room
	n.roomConnections = buildRoomConnections(n.id, n.roomsByNumber)
	return n, nil
}

// UpsertLabel returns a new snapshot with label inserted or replaced.
func (c *AreaCache) UpsertLabel(id LabelID, label Label) *AreaCache {
	n := c.clone()
	n.labels[id] = label
	return n
}

// DeleteLabel returns a new snapshot with the named label removed.
func (c *AreaCache) DeleteLabel(id LabelID) *AreaCache {
	n := c.clone()
	delete(n.labels, id)
	return n
}

// UpsertShape returns a new snapshot with shape inserted or replaced.
func (c *AreaCache) UpsertShape(id ShapeID, shape Shape) *AreaCache {
	n := c.clone()
	n.shapes[id] = shape
	return n
}

// DeleteShape returns a new snapshot with the named shape removed.
func (c *AreaCache) DeleteShape(id ShapeID) *AreaCache {
	n := c.clone()
	delete(n.shapes, id)
	return n
}

// buildRoomConnections classifies every room's exits into RoomConnections,
// deduping same-level bidirectional pairs so each one yields a single
// record; a pair between rooms on different levels yields one ToLevel
// record from each room.
//
// An exit is bidirectional only when its target is the same area and the
// target room has a mirror exit pointing back with the same direction
// pair; cross-area exits are never considered bidirectional.
func buildRoomConnections(areaID AreaID, rooms map[RoomNumber]Room) []RoomConnection {
	var out []RoomConnection
	skipExitIDs := map[ExitID]bool{}

	numbers := make([]RoomNumber, 0, len(rooms))
	for n := range rooms {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	for _, fromNumber := range numbers {
		room := rooms[fromNumber]
		for _, exit := range room.Exits {
			if skipExitIDs[exit.ID] {
				continue
			}

			if exit.ToAreaID == nil {
				out = append(out, RoomConnection{
					Kind:           ConnectionNone,
					FromRoomNumber: fromNumber,
					From:           exit,
				})
				continue
			}

			if *exit.ToAreaID != areaID {
				out = append(out, RoomConnection{
					Kind:           ConnectionExternal,
					FromRoomNumber: fromNumber,
					From:           exit,
					ExternalAreaID: *exit.ToAreaID,
				})
				continue
			}

			if exit.ToRoomNumber == nil {
				out = append(out, RoomConnection{
					Kind:           ConnectionNone,
					FromRoomNumber: fromNumber,
					From:           exit,
				})
				continue
			}

			conn := RoomConnection{
				FromRoomNumber: fromNumber,
				From:           exit,
				ToRoomNumber:   *exit.ToRoomNumber,
			}

			peer, peerExists := rooms[*exit.ToRoomNumber]
			if !peerExists {
				conn.Kind = ConnectionNormal
				out = append(out, conn)
				continue
			}

			toLevel := exit.ToDirection != nil && peer.Level != room.Level
			mirror, mirrorFound := findMirrorExit(peer, fromNumber, exit)
			if mirrorFound {
				if !toLevel {
					skipExitIDs[mirror.ID] = true
				}
				conn.IsBidirectional = true
				m := mirror
				conn.To = &m
			}
			if toLevel {
				conn.Kind = ConnectionToLevel
			} else {
				conn.Kind = ConnectionNormal
			}
			out = append(out, conn)
		}
	}
	return out
}

// findMirrorExit looks for an exit on peer pointing back to fromNumber
// with the direction pair exactly reversed from exit.
func findMirrorExit(peer Room, fromNumber RoomNumber, exit Exit) (Exit, bool) {
	for _, candidate := range peer.Exits {
		if candidate.ToRoomNumber == nil || *candidate.ToRoomNumber != fromNumber {
			continue
		}
		if exit.ToDirection != nil && candidate.FromDirection == *exit.ToDirection &&
			candidate.ToDirection != nil && *candidate.ToDirection == exit.FromDirection {
			return candidate, true
		}
	}
	return Exit{}, false
}
