// Package reactive holds component state and lifecycle.
//
// A Signal is a state cell whose writers notify subscribers when the value
// actually changes. An Owner tracks one component instance: hooks registered
// with OnMount run exactly once, on the first Commit, and
// cleanups run in reverse order on Dispose.
//
//	owner := reactive.NewOwner()
//	open := reactive.NewSignal(false)
//	owner.OnMount(bootstrap)
//
//	html := render(open.Get())
//	if err := owner.Commit(); err != nil {
//	    // mount hook failed
//	}
package reactive
