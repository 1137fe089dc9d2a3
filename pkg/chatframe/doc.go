// Package chatframe drives the MSN Chat control through its published
// interfaces.
//
// The control is an externally registered component; this package never
// implements it. Frame wraps IChatFrame, Settings wraps IChatSettings, and
// OnRedirect subscribes to the control's redirect notification.
//
//	r := chatframe.NewResolver(com.SystemClasses, nil)
//	f, err := chatframe.New(ctx, r, chatframe.Config{})
//	if err != nil { ... }
//	defer f.Close()
//	_ = f.SetRoomName("The Lobby")
//	_ = f.SetBackColor(com.RGB(0, 255, 0))
//
// Every property accessor is an instance of the generic protocol in
// pkg/com; the per-property methods only bind names to vtable slots.
package chatframe
