/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package mapcache holds the in-memory, immutable-snapshot map of a MUD's
// areas and rooms, keeping it synced to a remote mapping backend in the
// background. Reads never block on the network; writes apply locally
// first (via read-copy-update) and are mirrored to the backend by a
// dedicated worker goroutine.
package mapcache

// AreaID, RoomNumber, ExitID, LabelID, and ShapeID are opaque identifiers
// assigned by the mapping backend.
type AreaID string

// RoomNumber identifies a room within its area.
type RoomNumber int32

// ExitID identifies an exit within its area.
type ExitID string

// LabelID identifies a text label within its area.
type LabelID string

// ShapeID identifies a drawn shape within its area.
type ShapeID string

// ExitDirection enumerates the directions an Exit may travel.
type ExitDirection string

const (
	North     ExitDirection = "North"
	East      ExitDirection = "East"
	South     ExitDirection = "South"
	West      ExitDirection = "West"
	Up        ExitDirection = "Up"
	Down      ExitDirection = "Down"
	Northeast ExitDirection = "Northeast"
	Northwest ExitDirection = "Northwest"
	Southeast ExitDirection = "Southeast"
	Southwest ExitDirection = "Southwest"
	In        ExitDirection = "In"
	Out       ExitDirection = "Out"
	Special   ExitDirection = "Special"
	Other     ExitDirection = "Other"
)

// ShapeType enumerates the drawable shape kinds.
type ShapeType string

const (
	ShapeRectangle        ShapeType = "Rectangle"
	ShapeRoundedRectangle ShapeType = "RoundedRectangle"
)

// HorizontalAlignment positions a Label horizontally within its box.
type HorizontalAlignment string

const (
	AlignLeft   HorizontalAlignment = "Left"
	AlignCenter HorizontalAlignment = "Center"
	AlignRight  HorizontalAlignment = "Right"
)

// VerticalAlignment positions a Label vertically within its box.
type VerticalAlignment string

const (
	AlignTop    VerticalAlignment = "Top"
	AlignMiddle VerticalAlignment = "Center"
	AlignBottom VerticalAlignment = "Bottom"
)

// Property is a simple name/value pair attached to an area or a room.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Exit connects a room to another room, possibly in another area.
type Exit struct {
	ID             ExitID         `json:"id"`
	FromDirection  ExitDirection  `json:"from_direction"`
	ToAreaID       *AreaID        `json:"to_area_id,omitempty"`
	ToRoomNumber   *RoomNumber    `json:"to_room_number,omitempty"`
	ToDirection    *ExitDirection `json:"to_direction,omitempty"`
	Path           *string        `json:"path,omitempty"`
	IsHidden       bool           `json:"is_hidden"`
	IsClosed       bool           `json:"is_closed"`
	IsLocked       bool           `json:"is_locked"`
	Weight         float32        `json:"weight"`
	Command        *string        `json:"command,omitempty"`
}

// ExitArgs is the payload used to create a new Exit.
type ExitArgs struct {
	FromDirection ExitDirection  `json:"from_direction"`
	ToAreaID      *AreaID        `json:"to_area_id,omitempty"`
	ToRoomNumber  *RoomNumber    `json:"to_room_number,omitempty"`
	ToDirection   *ExitDirection `json:"to_direction,omitempty"`
	Path          *string        `json:"path,omitempty"`
	IsHidden      bool           `json:"is_hidden"`
	IsClosed      bool           `json:"is_closed"`
	IsLocked      bool           `json:"is_locked"`
	Weight        float32        `json:"weight"`
	Command       *string        `json:"command,omitempty"`
}

// ExitUpdates is a sparse set of field changes applied to an existing Exit.
type ExitUpdates struct {
	FromDirection *ExitDirection `json:"from_direction,omitempty"`
	ToAreaID      *AreaID        `json:"to_area_id,omitempty"`
	ToRoomNumber  *RoomNumber    `json:"to_room_number,omitempty"`
	ToDirection   *ExitDirection `json:"to_direction,omitempty"`
	Path          *string        `json:"path,omitempty"`
	IsHidden      *bool          `json:"is_hidden,omitempty"`
	IsClosed      *bool          `json:"is_closed,omitempty"`
	IsLocked      *bool          `json:"is_locked,omitempty"`
	Weight        *float32       `json:"weight,omitempty"`
	Command       *string        `json:"command,omitempty"`
}

// Apply returns a copy of exit with every set field in u overwritten.
func (u ExitUpdates) Apply(exit Exit) Exit {
	out := exit
	if u.FromDirection != nil {
		out.FromDirection = *u.FromDirection
	}
	out.ToAreaID = u.ToAreaID
	out.ToRoomNumber = u.ToRoomNumber
	out.ToDirection = u.ToDirection
	out.Path = u.Path
	if u.IsHidden != nil {
		out.IsHidden = *u.IsHidden
	}
	if u.IsClosed != nil {
		out.IsClosed = *u.IsClosed
	}
	if u.IsLocked != nil {
		out.IsLocked = *u.IsLocked
	}
	if u.Weight != nil {
		out.Weight = *u.Weight
	}
	out.Command = u.Command
	return out
}

// Room is one location within an area.
type Room struct {
	RoomNumber  RoomNumber          `json:"room_number"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Level       int32               `json:"level"`
	X           float32             `json:"x"`
	Y           float32             `json:"y"`
	Color       string              `json:"color"`
	Properties  map[string]string   `json:"properties"`
	Exits       []Exit              `json:"exits"`
}

// RoomUpdates is a sparse set of field changes applied to an existing Room,
// or the seed values used when upserting a room that does not yet exist.
type RoomUpdates struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Level       *int32   `json:"level,omitempty"`
	X           *float32 `json:"x,omitempty"`
	Y           *float32 `json:"y,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// Apply returns a copy of room with every set field in u overwritten.
func (u RoomUpdates) Apply(room Room) Room {
	out := room
	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Description != nil {
		out.Description = *u.Description
	}
	if u.Level != nil {
		out.Level = *u.Level
	}
	if u.X != nil {
		out.X = *u.X
	}
	if u.Y != nil {
		out.Y = *u.Y
	}
	if u.Color != nil {
		out.Color = *u.Color
	}
	return out
}

// Label is a text annotation drawn on an area's map.
type Label struct {
	ID                LabelID             `json:"id"`
	Level             int32               `json:"level"`
	X                 float32             `json:"x"`
	Y                 float32             `json:"y"`
	Width             float32             `json:"width"`
	Height            float32             `json:"height"`
	HorizontalAlign   HorizontalAlignment `json:"horizontal_alignment"`
	VerticalAlign     VerticalAlignment   `json:"vertical_alignment"`
	Text              string              `json:"text"`
	Color             string              `json:"color"`
	BackgroundColor   string              `json:"background_color"`
	FontSize          int32               `json:"font_size"`
	FontWeight        int32               `json:"font_weight"`
}

// LabelArgs is the payload used to create a new Label.
type LabelArgs struct {
	Level           int32               `json:"level"`
	X               float32             `json:"x"`
	Y               float32             `json:"y"`
	Width           float32             `json:"width"`
	Height          float32             `json:"height"`
	HorizontalAlign HorizontalAlignment `json:"horizontal_alignment"`
	VerticalAlign   VerticalAlignment   `json:"vertical_alignment"`
	Text            string              `json:"text"`
	Color           string              `json:"color"`
	BackgroundColor *string             `json:"background_color,omitempty"`
	FontSize        int32               `json:"font_size"`
	FontWeight      int32               `json:"font_weight"`
}

// LabelUpdates is a sparse set of field changes applied to an existing Label.
type LabelUpdates struct {
	Level           *int32               `json:"level,omitempty"`
	X               *float32             `json:"x,omitempty"`
	Y               *float32             `json:"y,omitempty"`
	Width           *float32             `json:"width,omitempty"`
	Height          *float32             `json:"height,omitempty"`
	HorizontalAlign *HorizontalAlignment `json:"horizontal_alignment,omitempty"`
	VerticalAlign   *VerticalAlignment   `json:"vertical_alignment,omitempty"`
	Text            *string              `json:"text,omitempty"`
	Color           *string              `json:"color,omitempty"`
	BackgroundColor *string              `json:"background_color,omitempty"`
	FontSize        *int32               `json:"font_size,omitempty"`
	FontWeight      *int32               `json:"font_weight,omitempty"`
}

// Shape is a drawn rectangle (or rounded rectangle) on an area's map.
type Shape struct {
	ID              ShapeID   `json:"id"`
	Level           int32     `json:"level"`
	X               float32   `json:"x"`
	Y               float32   `json:"y"`
	Width           float32   `json:"width"`
	Height          float32   `json:"height"`
	BackgroundColor *string   `json:"background_color,omitempty"`
	StrokeColor     *string   `json:"stroke_color,omitempty"`
	Type            ShapeType `json:"shape_type"`
	BorderRadius    float32   `json:"border_radius"`
	StrokeWidth     float32   `json:"stroke_width"`
}

// ShapeArgs is the payload used to create a new Shape.
type ShapeArgs struct {
	Level           int32     `json:"level"`
	X               float32   `json:"x"`
	Y               float32   `json:"y"`
	Width           float32   `json:"width"`
	Height          float32   `json:"height"`
	BackgroundColor *string   `json:"background_color,omitempty"`
	StrokeColor     *string   `json:"stroke_color,omitempty"`
	Type            ShapeType `json:"shape_type"`
	BorderRadius    float32   `json:"border_radius"`
	StrokeWidth     *float32  `json:"stroke_width,omitempty"`
}

// ShapeUpdates is a sparse set of field changes applied to an existing Shape.
type ShapeUpdates struct {
	Level           *int32     `json:"level,omitempty"`
	X               *float32   `json:"x,omitempty"`
	Y               *float32   `json:"y,omitempty"`
	Width           *float32   `json:"width,omitempty"`
	Height          *float32   `json:"height,omitempty"`
	BackgroundColor *string    `json:"background_color,omitempty"`
	StrokeColor     *string    `json:"stroke_color,omitempty"`
	Type            *ShapeType `json:"shape_type,omitempty"`
	BorderRadius    *float32   `json:"border_radius,omitempty"`
	StrokeWidth     *float32   `json:"stroke_width,omitempty"`
}

// Area is the backend-side summary record for one area (without its rooms).
type Area struct {
	ID   AreaID `json:"id"`
	Name string `json:"name"`
	Rev  int64  `json:"rev"`
}

// AreaWithDetails is the full backend payload for one area: its summary
// record plus every room, property, label, and shape it contains.
type AreaWithDetails struct {
	Area       Area       `json:"area"`
	Properties []Property `json:"properties"`
	Rooms      []Room     `json:"rooms"`
	Labels     []Label    `json:"labels"`
	Shapes     []Shape    `json:"shapes"`
}

// CreateAreaRequest is the payload sent to create a new area.
type CreateAreaRequest struct {
	Name string `json:"name"`
}

// AreaUpdates is a sparse set of field changes applied to an existing Area.
type AreaUpdates struct {
	Name *string `json:"name,omitempty"`
}

// ConnectionKind classifies a room's exit for map-drawing purposes, the
// result of build_room_connections.
type ConnectionKind int

const (
	// ConnectionNormal is an exit to a room in the same area, at the same
	// or an unspecified level.
	ConnectionNormal ConnectionKind = iota
	// ConnectionToLevel is an exit to a room in the same area but at a
	// different level; it is recorded once from each room's perspective.
	ConnectionToLevel
	// ConnectionExternal is an exit to a room in a different area.
	ConnectionExternal
	// ConnectionNone is a dangling exit with no destination area at all.
	ConnectionNone
)

// RoomConnection is one drawable connection derived from a room's exits,
// possibly paired with the mirror exit on the far side.
type RoomConnection struct {
	Kind            ConnectionKind
	FromRoomNumber  RoomNumber
	From            Exit
	ToRoomNumber    RoomNumber
	To              *Exit
	ExternalAreaID  AreaID
	IsBidirectional bool
}
