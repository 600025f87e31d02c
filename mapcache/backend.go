/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mapcache

import "context"

// Backend is the remote mapping service a Mapper keeps its local snapshot
// synced against. HTTPBackend is the production implementation; tests
// supply a fake.
type Backend interface {
	ListAreas(ctx context.Context) ([]Area, error)
	GetArea(ctx context.Context, id AreaID) (AreaWithDetails, error)
	CreateArea(ctx context.Context, req CreateAreaRequest) (Area, error)
	UpdateArea(ctx context.Context, id AreaID, updates AreaUpdates) error
	DeleteArea(ctx context.Context, id AreaID) error

	SetAreaProperty(ctx context.Context, id AreaID, name, value string) error
	DeleteAreaProperty(ctx context.Context, id AreaID, name string) error

	UpdateRoom(ctx context.Context, key RoomKey, updates RoomUpdates) error
	DeleteRoom(ctx context.Context, key RoomKey) error
	SetRoomProperty(ctx context.Context, key RoomKey, name, value string) error
	DeleteRoomProperty(ctx context.Context, key RoomKey, name string) error

	CreateExit(ctx context.Context, key RoomKey, args ExitArgs) (Exit, error)
	UpdateExit(ctx context.Context, areaID AreaID, exitID ExitID, updates ExitUpdates) error
	DeleteExit(ctx context.Context, areaID AreaID, exitID ExitID) error

	CreateLabel(ctx context.Context, areaID AreaID, args LabelArgs) (Label, error)
	UpdateLabel(ctx context.Context, areaID AreaID, labelID LabelID, updates LabelUpdates) error
	DeleteLabel(ctx context.Context, areaID AreaID, labelID LabelID) error

	CreateShape(ctx context.Context, areaID AreaID, args ShapeArgs) (Shape, error)
	UpdateShape(ctx context.Context, areaID AreaID, shapeID ShapeID, updates ShapeUpdates) error
	DeleteShape(ctx context.Context, areaID AreaID, shapeID ShapeID) error
}

// RoomKey names a room within a particular area.
type RoomKey struct {
	AreaID     AreaID
	RoomNumber RoomNumber
}
