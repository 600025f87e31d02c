/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

// bootstrapScript is smudgy.js: it runs before any user module and wires
// the low-level ops registered by registerOps/registerMapperOps into the
// friendlier surface user scripts actually call. Kept as a Go string
// constant rather than an embedded file since the engine has no other
// use for an embed.FS and this keeps the bootstrap bundled into the
// binary the way the original's ascii_str_include! does.
const bootstrapScript = `
(function () {
  globalThis.smudgy = globalThis.smudgy || {};

  smudgy.echo = function (text) { __op_session_echo(smudgy.getCurrentSession(), String(text)); };
  smudgy.send = function (text) { __op_session_send(smudgy.getCurrentSession(), String(text)); };
  smudgy.sendRaw = function (text) { __op_session_send_raw(smudgy.getCurrentSession(), String(text)); };

  smudgy.getCurrentSession = function () { return __op_get_current_session(); };
  smudgy.getSessions = function () { return __op_get_sessions(); };
  smudgy.getSessionCharacter = function (id) { return __op_get_session_character(id); };

  smudgy.createAlias = function (name, patterns, fnOrScript) {
    if (typeof fnOrScript === "function") {
      __op_create_javascript_function_alias(name, patterns, fnOrScript);
    } else {
      __op_create_simple_alias(name, patterns, String(fnOrScript));
    }
  };

  smudgy.createTrigger = function (name, patterns, rawPatterns, antiPatterns, fnOrScript, prompt, enabled) {
    prompt = !!prompt;
    enabled = enabled === undefined ? true : !!enabled;
    if (typeof fnOrScript === "function") {
      __op_create_javascript_function_trigger(name, patterns, rawPatterns, antiPatterns, fnOrScript, prompt, enabled);
    } else {
      __op_create_simple_trigger(name, patterns, rawPatterns, antiPatterns, String(fnOrScript), prompt, enabled);
    }
  };

  smudgy.setAliasEnabled = function (name, enabled) { __op_set_alias_enabled(name, !!enabled); };
  smudgy.setTriggerEnabled = function (name, enabled) { __op_set_trigger_enabled(name, !!enabled); };

  smudgy.mapper = smudgy.mapper || {};
  smudgy.mapper.listAreaIds = function () { return __op_mapper_list_area_ids(); };
  smudgy.mapper.createArea = function (name) { return __op_mapper_create_area(String(name)); };
  smudgy.mapper.getAreaById = function (id) { return __op_mapper_get_area_by_id(String(id)); };
  smudgy.mapper.renameArea = function (id, name) { __op_mapper_rename_area(String(id), String(name)); };
  smudgy.mapper.setRoomTitle = function (areaId, roomNumber, title) { __op_mapper_set_room_title(String(areaId), roomNumber, String(title)); };
  smudgy.mapper.setRoomDescription = function (areaId, roomNumber, description) { __op_mapper_set_room_description(String(areaId), roomNumber, String(description)); };
  smudgy.mapper.setRoomColor = function (areaId, roomNumber, color) { __op_mapper_set_room_color(String(areaId), roomNumber, String(color)); };
  smudgy.mapper.setRoomLevel = function (areaId, roomNumber, level) { __op_mapper_set_room_level(String(areaId), roomNumber, level); };
  smudgy.mapper.setRoomX = function (areaId, roomNumber, x) { __op_mapper_set_room_x(String(areaId), roomNumber, x); };
  smudgy.mapper.setRoomY = function (areaId, roomNumber, y) { __op_mapper_set_room_y(String(areaId), roomNumber, y); };
  smudgy.mapper.setRoomProperty = function (areaId, roomNumber, name, value) { __op_mapper_set_room_property(String(areaId), roomNumber, String(name), String(value)); };
})();
`
