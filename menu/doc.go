// SPDX-License-Identifier: MIT

// Package menu is an in-memory product catalog with attribute tensors.
//
// A generic product (e.g. "coffee", PID 9000) is configured along an ordered
// list of attribute dimensions (size, temperature, caffeine, ...). Each
// specific configuration is identified by a key of the form
//
//	<pid>:<c1>:<c2>:...:<ck>
//
// where ci is the position of the selected attribute in the i-th dimension.
// "9000:0:0:0" is the default small hot regular coffee; "9000:2:1:0" a
// large iced one. Products without dimensions have the bare key "<pid>".
//
// Specific names are composed from the visible attribute labels followed by
// the product name ("small coffee"); hidden attributes, typically the default
// of a dimension that nobody says out loud ("hot", "regular"), are omitted.
// A catalog file can override the composed name of any key.
//
// Catalogs are immutable after construction and safe for concurrent reads.
package menu
