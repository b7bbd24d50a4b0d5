// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, pane chrome,
//   the popup overlay compositor, combobox chrome)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or tab policy
package widgets
