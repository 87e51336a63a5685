// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package sim

import (
	"context"
	"testing"
)

func newTestContext(t *testing.T) context.Context {
	t.Helper()
	return context.Background()
}
