// Package comtest provides an in-process stub component server for tests
// and demos.
//
// Objects created by a Server are real binary objects: their vtables hold
// native-callable trampolines, so every call made through pkg/com crosses
// the same boundary a registered component would. Each property interface
// is declared as a list of value kinds; property i is served by the getter
// at slot 3+2i and the setter at slot 4+2i. Objects count every property
// call, can be told to fail a slot, and can fire events at advised sinks
// from any goroutine.
package comtest
