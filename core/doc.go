// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - shared state machines used across screens (stepper, selector)
// - tab policy (tab definitions, tab switching)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
package core
