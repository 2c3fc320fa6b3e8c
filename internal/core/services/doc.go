// Package services implements the driving port interfaces.
// Services contain the core calculator logic and orchestrate
// calls to driven ports (adapters).
//
// The Accumulator and Evaluator are pure: they take a state value and
// return the next one. Calculator owns the single live state and
// serialises every input source through it.
package services
