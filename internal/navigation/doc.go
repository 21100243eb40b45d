// Package navigation holds the building blocks of a navigation session: path
// planning over a PathOracle, rerouting between same-name destination
// instances, per-channel arrival hysteresis and turn instruction
// classification.
//
// None of the types here are safe for concurrent use. The session that owns
// them serializes access.
package navigation
