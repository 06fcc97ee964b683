// Package builder defines shared constants used by instance constructors.
package builder

// Method names prefix constructor errors for context.
const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodIdentical is the canonical name for the Identical constructor.
	MethodIdentical = "Identical"
	// MethodCyclic is the canonical name for the Cyclic constructor.
	MethodCyclic = "Cyclic"
	// MethodTextbook is the canonical name for the Textbook constructor.
	MethodTextbook = "Textbook"
)

// MinGroupSize is the smallest accepted group size. An empty instance is
// valid input for the engine, so zero is allowed.
const MinGroupSize = 0

// TextbookSize is the group size of the Textbook instance.
const TextbookSize = 4
