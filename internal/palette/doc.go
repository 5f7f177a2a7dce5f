// Package palette holds the state of the five swatches shown to the user.
//
// A State is an immutable snapshot: every operation returns a new State and
// leaves the receiver untouched, so the UI can keep the previous snapshot
// around and tests can compare snapshots directly.
//
//	gen := palette.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
//	st := palette.New(gen, harmony.SchemeTriadic)
//	st = st.ToggleLock(2)
//	st = st.Regenerate(gen) // slot 2 keeps its colour
//	badge := st.Harmony()
package palette
