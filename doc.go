// SPDX-FileCopyrightText: 2026 Kamino contributors
//
// SPDX-License-Identifier: MIT

// Package persist provides the host bridge, error taxonomy, serialization
// helpers and content-addressing used by the persistent collections in this
// module (hashdict, smallmap, sorteddict, vector, hashset). Every collection
// here is fully immutable: mutating operations return a new value and never
// modify the receiver, sharing as much internal structure between versions
// as possible.
package persist
