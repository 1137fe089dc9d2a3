package abi

import "runtime"

var (
	lockThread   = runtime.LockOSThread
	unlockThread = runtime.UnlockOSThread
)

// enterApartment locks the calling thread and runs enter. The lock is kept
// only when enter reports success, so a refused apartment leaves the thread
// as it was.
func enterApartment(enter func() int32) int32 {
	lockThread()
	hr := enter()
	if hr < 0 {
		unlockThread()
	}
	return hr
}
