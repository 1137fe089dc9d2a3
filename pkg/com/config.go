package com

import "github.com/ircx/chatframe-go/pkg/logging"

// Config carries the knobs shared by Resolver and EventSink.
type Config struct {
	// Logger receives debug traces of creations, queries and dropped
	// events. Nil discards them.
	Logger logging.Logger

	// CreationIID is the interface requested when instantiating a class.
	// The zero value requests IIDUnknown.
	CreationIID GUID
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Nop()
	}
	return c.Logger
}

func (c Config) creationIID() GUID {
	if c.CreationIID.IsZero() {
		return IIDUnknown
	}
	return c.CreationIID
}
