// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import "errors"

// ErrUnknownType indicates a damage type string outside the closed set
// defined in type.go. This is a ValidationError-kind failure: it should
// abort loading the offending creature/item/condition definition without
// mutating any combat state.
var ErrUnknownType = errors.New("damage: unknown type")
