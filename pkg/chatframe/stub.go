package chatframe

import "github.com/ircx/chatframe-go/pkg/com/comtest"

// RegisterStubs declares in-process stand-ins for the chat control classes
// on srv, with the same identifiers and vtable layout as the real control.
func RegisterStubs(srv *comtest.Server) {
	srv.Register(comtest.Class{
		CLSID: CLSIDMSNChatFrame,
		Interfaces: []comtest.Interface{
			{IID: IIDIChatFrame, Props: stubKinds(frameFields)},
		},
		Events: DIIDICChatFrameEvents,
	})
	srv.Register(comtest.Class{
		CLSID: CLSIDChatSettings,
		Interfaces: []comtest.Interface{
			{IID: IIDIChatSettings, Props: stubKinds(settingsFields)},
		},
	})
}

func stubKinds(fields []Field) []comtest.Kind {
	kinds := make([]comtest.Kind, len(fields))
	for i, f := range fields {
		switch f.Kind {
		case KindMode:
			kinds[i] = comtest.Int32
		case KindText:
			kinds[i] = comtest.Text
		default:
			kinds[i] = comtest.Uint32
		}
	}
	return kinds
}

// FieldIndex returns the declared position of the named Frame property,
// or -1.
func FieldIndex(name string) int {
	for i, f := range frameFields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
