// Package order models the in-progress order that one conversation session
// accumulates before completion.
//
// The aggregate is a quantity-by-item mapping with a remembered first-added
// order, which keeps the formatted representation deterministic. Its state
// machine per session is driven from the application layer:
//
//	absent ──add──> in-progress ──add/remove──> in-progress ──complete──> absent
//
// Remove on an absent order is a no-op transition; complete is terminal and
// always clears the session entry, whether persistence succeeded or not.
//
// The package also carries the tracking Status constants recorded for
// persisted orders and the pure FormatLines display formatter.
package order
