// Package domain defines the core entities of the keypad calculator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Intent: A single user action (digit, operator, clear, ...)
//   - State: The expression buffer plus the fresh-input flag
//   - Profile: Which operators are enabled and how results are rounded
//   - Outcome: The classified result of one evaluation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
