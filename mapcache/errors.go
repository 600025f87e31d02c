/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package mapcache

import "errors"

var (
	// ErrAreaNotFound is returned when an operation names an AreaID the
	// current AtlasCache snapshot has no entry for.
	ErrAreaNotFound = errors.New("mapcache: area not found")
	// ErrRoomNotFound is returned when an operation names a RoomNumber the
	// named area's AreaCache has no entry for.
	ErrRoomNotFound = errors.New("mapcache: room not found")
	// ErrExitNotFound is returned when an operation names an ExitID a
	// room's exit list has no entry for.
	ErrExitNotFound = errors.New("mapcache: exit not found")
	// ErrPropertyNotFound is returned when deleting a property that isn't set.
	ErrPropertyNotFound = errors.New("mapcache: property not found")
	// ErrSyncFailed is returned by WaitForSyncCompletion when one or more
	// background sync operations failed.
	ErrSyncFailed = errors.New("mapcache: one or more sync operations failed")
)
