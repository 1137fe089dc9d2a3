package chatframe

import "github.com/ircx/chatframe-go/pkg/com"

// Type library.
var LIBIDMSNChat = com.MustParseGUID("0f0a655c-6c6d-4e0b-8038-f980b36f9c78")

// Interfaces.
var (
	IIDIChatFrame         = com.MustParseGUID("125e64fa-3304-4bb9-a756-d0d44cc8cd7d")
	IIDIChatSettings      = com.MustParseGUID("d5ef4299-12f1-474d-98c5-3c658fd2e343")
	DIIDICChatFrameEvents = com.MustParseGUID("5eeb8014-53b2-448b-9f3b-c553424832e1")
)

// Creatable classes.
var (
	CLSIDMSNChatFrame = com.MustParseGUID("f58e1cef-a068-4d2f-b3c2-9a5be42525f8")
	CLSIDChatSettings = com.MustParseGUID("fa980e7e-9e44-4d2f-b3c2-9a5be42525f8")
)
