package treap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// afterMutateHook is invoked with the *Treap after every Set and every
	// successful Delete.
	afterMutateHook func(tree any)
)
