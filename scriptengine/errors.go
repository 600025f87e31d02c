/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

import "errors"

// ErrUnknownScript is returned when a ScriptID has no compiled program
// behind it, e.g. after a Reload cleared the cache.
var ErrUnknownScript = errors.New("scriptengine: unknown script id")

// ErrUnknownFunction is returned when a FunctionID has no captured
// function behind it.
var ErrUnknownFunction = errors.New("scriptengine: unknown function id")

// ErrMapperNotEnabled is thrown back into JS (as a rejected/thrown
// exception, via goja's error-return convention) when a script calls a
// smudgy.mapper.* op on a session that has no Mapper attached.
var ErrMapperNotEnabled = errors.New("scriptengine: mapper not enabled in this session")

// ErrAreaNotFound is thrown back into JS when a mapper op references an
// area id that is not present in the current atlas snapshot.
var ErrAreaNotFound = errors.New("scriptengine: area not found")
