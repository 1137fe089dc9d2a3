package chatframe

import (
	"context"

	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/logging"
)

// IChatFrame derives from IUnknown; its properties follow the three
// IUnknown slots as getter/setter pairs in declared order.
var frameLayout = com.IUnknownLayout

const (
	frameBackColor = iota
	frameBackHighlightColor
	frameButtonFrameColor
	frameTopBackHighlightColor
	frameInputBorderColor
	frameButtonTextColor
	frameButtonBackColor
	frameChatMode
	frameFeature
	frameRoomName
	frameHexRoomName
	frameNickName
	frameServer
	frameURLBack
	frameCategory
	frameTopic
	frameWelcomeMsg
	frameBaseURL
	frameCreateRoom
	frameChatHome
	frameLocale
	frameResDLL
	framePassportTicket
	framePassportProfile
	frameMessageOfTheDay
	frameChannelLanguage
	frameInvitationCode
	frameNicknameToInvite
	frameMSNREGCookie
	frameCreationModes
	frameMSNProfile
	frameMarket
	frameWhisperContent
	frameUserRole
	frameAuditMessage
	frameSubscriberInfo
	frameUpsellURL
)

var (
	propBackColor             = com.ScalarAt[com.Color](frameLayout, "BackColor", frameBackColor)
	propBackHighlightColor    = com.ScalarAt[com.Color](frameLayout, "BackHighlightColor", frameBackHighlightColor)
	propButtonFrameColor      = com.ScalarAt[com.Color](frameLayout, "ButtonFrameColor", frameButtonFrameColor)
	propTopBackHighlightColor = com.ScalarAt[com.Color](frameLayout, "TopBackHighlightColor", frameTopBackHighlightColor)
	propInputBorderColor      = com.ScalarAt[com.Color](frameLayout, "InputBorderColor", frameInputBorderColor)
	propButtonTextColor       = com.ScalarAt[com.Color](frameLayout, "ButtonTextColor", frameButtonTextColor)
	propButtonBackColor       = com.ScalarAt[com.Color](frameLayout, "ButtonBackColor", frameButtonBackColor)
	propChatMode              = com.ScalarAt[com.Mode](frameLayout, "ChatMode", frameChatMode)
	propFeature               = com.ScalarAt[com.Flags](frameLayout, "Feature", frameFeature)
	propRoomName              = frameLayout.TextAt("RoomName", frameRoomName)
	propHexRoomName           = frameLayout.TextAt("HexRoomName", frameHexRoomName)
	propNickName              = frameLayout.TextAt("NickName", frameNickName)
	propServer                = frameLayout.TextAt("Server", frameServer)
	propURLBack               = frameLayout.TextAt("URLBack", frameURLBack)
	propCategory              = frameLayout.TextAt("Category", frameCategory)
	propTopic                 = frameLayout.TextAt("Topic", frameTopic)
	propWelcomeMsg            = frameLayout.TextAt("WelcomeMsg", frameWelcomeMsg)
	propBaseURL               = frameLayout.TextAt("BaseURL", frameBaseURL)
	propCreateRoom            = frameLayout.TextAt("CreateRoom", frameCreateRoom)
	propChatHome              = frameLayout.TextAt("ChatHome", frameChatHome)
	propLocale                = frameLayout.TextAt("Locale", frameLocale)
	propResDLL                = frameLayout.TextAt("ResDLL", frameResDLL)
	propPassportTicket        = frameLayout.TextAt("PassportTicket", framePassportTicket)
	propPassportProfile       = frameLayout.TextAt("PassportProfile", framePassportProfile)
	propMessageOfTheDay       = frameLayout.TextAt("MessageOfTheDay", frameMessageOfTheDay)
	propChannelLanguage       = frameLayout.TextAt("ChannelLanguage", frameChannelLanguage)
	propInvitationCode        = frameLayout.TextAt("InvitationCode", frameInvitationCode)
	propNicknameToInvite      = frameLayout.TextAt("NicknameToInvite", frameNicknameToInvite)
	propMSNREGCookie          = frameLayout.TextAt("MSNREGCookie", frameMSNREGCookie)
	propCreationModes         = frameLayout.TextAt("CreationModes", frameCreationModes)
	propMSNProfile            = frameLayout.TextAt("MSNProfile", frameMSNProfile)
	propMarket                = frameLayout.TextAt("Market", frameMarket)
	propWhisperContent        = frameLayout.TextAt("WhisperContent", frameWhisperContent)
	propUserRole              = frameLayout.TextAt("UserRole", frameUserRole)
	propAuditMessage          = frameLayout.TextAt("AuditMessage", frameAuditMessage)
	propSubscriberInfo        = frameLayout.TextAt("SubscriberInfo", frameSubscriberInfo)
	propUpsellURL             = frameLayout.TextAt("UpsellURL", frameUpsellURL)
)

var frameFields = []Field{
	colorField(propBackColor),
	colorField(propBackHighlightColor),
	colorField(propButtonFrameColor),
	colorField(propTopBackHighlightColor),
	colorField(propInputBorderColor),
	colorField(propButtonTextColor),
	colorField(propButtonBackColor),
	modeField(propChatMode),
	flagsField(propFeature),
	textField(propRoomName, false),
	textField(propHexRoomName, false),
	textField(propNickName, false),
	textField(propServer, false),
	textField(propURLBack, false),
	textField(propCategory, false),
	textField(propTopic, false),
	textField(propWelcomeMsg, false),
	textField(propBaseURL, false),
	textField(propCreateRoom, false),
	textField(propChatHome, false),
	textField(propLocale, false),
	textField(propResDLL, false),
	textField(propPassportTicket, true),
	textField(propPassportProfile, true),
	textField(propMessageOfTheDay, false),
	textField(propChannelLanguage, false),
	textField(propInvitationCode, true),
	textField(propNicknameToInvite, false),
	textField(propMSNREGCookie, true),
	textField(propCreationModes, false),
	textField(propMSNProfile, true),
	textField(propMarket, false),
	textField(propWhisperContent, false),
	textField(propUserRole, false),
	textField(propAuditMessage, false),
	textField(propSubscriberInfo, true),
	textField(propUpsellURL, false),
}

// Config carries the ambient dependencies of a Frame or Settings.
type Config struct {
	Logger logging.Logger
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Nop()
	}
	return c.Logger
}

func (c Config) comConfig() com.Config {
	return com.Config{Logger: c.logger(), CreationIID: com.IIDOleObject}
}

// NewResolver returns a resolver that creates the control the way an
// embedding host does, through IOleObject.
func NewResolver(classes com.ClassFactory, log logging.Logger) *com.Resolver {
	return com.NewResolver(classes, Config{Logger: log}.comConfig())
}

// Frame is a live IChatFrame reference.
type Frame struct {
	*object
	cfg Config
}

// New creates the chat control and returns its IChatFrame interface.
func New(ctx context.Context, r *com.Resolver, cfg Config) (*Frame, error) {
	h, err := r.Resolve(ctx, CLSIDMSNChatFrame, IIDIChatFrame)
	if err != nil {
		return nil, err
	}
	return FromHandle(h, cfg), nil
}

// FromHandle wraps an IChatFrame handle obtained elsewhere. The Frame takes
// over the caller's reference.
func FromHandle(h com.Handle, cfg Config) *Frame {
	return &Frame{object: newObject(h, frameFields, cfg.logger()), cfg: cfg}
}

// Colors are 0x00BBGGRR.

func (f *Frame) BackColor() (com.Color, error)  { return propBackColor.Get(f.h) }
func (f *Frame) SetBackColor(v com.Color) error { return propBackColor.Put(f.h, &v) }

func (f *Frame) BackHighlightColor() (com.Color, error)  { return propBackHighlightColor.Get(f.h) }
func (f *Frame) SetBackHighlightColor(v com.Color) error { return propBackHighlightColor.Put(f.h, &v) }

func (f *Frame) ButtonFrameColor() (com.Color, error)  { return propButtonFrameColor.Get(f.h) }
func (f *Frame) SetButtonFrameColor(v com.Color) error { return propButtonFrameColor.Put(f.h, &v) }

func (f *Frame) TopBackHighlightColor() (com.Color, error) { return propTopBackHighlightColor.Get(f.h) }
func (f *Frame) SetTopBackHighlightColor(v com.Color) error {
	return propTopBackHighlightColor.Put(f.h, &v)
}

func (f *Frame) InputBorderColor() (com.Color, error)  { return propInputBorderColor.Get(f.h) }
func (f *Frame) SetInputBorderColor(v com.Color) error { return propInputBorderColor.Put(f.h, &v) }

func (f *Frame) ButtonTextColor() (com.Color, error)  { return propButtonTextColor.Get(f.h) }
func (f *Frame) SetButtonTextColor(v com.Color) error { return propButtonTextColor.Put(f.h, &v) }

func (f *Frame) ButtonBackColor() (com.Color, error)  { return propButtonBackColor.Get(f.h) }
func (f *Frame) SetButtonBackColor(v com.Color) error { return propButtonBackColor.Put(f.h, &v) }

// ChatMode selects the control's operating mode.
func (f *Frame) ChatMode() (com.Mode, error)  { return propChatMode.Get(f.h) }
func (f *Frame) SetChatMode(v com.Mode) error { return propChatMode.Put(f.h, &v) }

// Feature returns the bit set of enabled UI features.
func (f *Frame) Feature() (com.Flags, error)  { return propFeature.Get(f.h) }
func (f *Frame) SetFeature(v com.Flags) error { return propFeature.Put(f.h, &v) }

// RoomName returns the display name of the room to join.
func (f *Frame) RoomName() (string, error)  { return propRoomName.Get(f.h) }
func (f *Frame) SetRoomName(v string) error { return propRoomName.Put(f.h, &v) }

// HexRoomName returns the room name as hex-encoded bytes, used when the
// display name cannot round-trip.
func (f *Frame) HexRoomName() (string, error)  { return propHexRoomName.Get(f.h) }
func (f *Frame) SetHexRoomName(v string) error { return propHexRoomName.Put(f.h, &v) }

// NickName returns the nickname requested on join.
func (f *Frame) NickName() (string, error)  { return propNickName.Get(f.h) }
func (f *Frame) SetNickName(v string) error { return propNickName.Put(f.h, &v) }

// Server returns the chat server as host:port.
func (f *Frame) Server() (string, error)  { return propServer.Get(f.h) }
func (f *Frame) SetServer(v string) error { return propServer.Put(f.h, &v) }

// URLBack returns the page the control returns to when the user leaves.
func (f *Frame) URLBack() (string, error)  { return propURLBack.Get(f.h) }
func (f *Frame) SetURLBack(v string) error { return propURLBack.Put(f.h, &v) }

// Category returns the room category code.
func (f *Frame) Category() (string, error)  { return propCategory.Get(f.h) }
func (f *Frame) SetCategory(v string) error { return propCategory.Put(f.h, &v) }

// Topic returns the room topic.
func (f *Frame) Topic() (string, error)  { return propTopic.Get(f.h) }
func (f *Frame) SetTopic(v string) error { return propTopic.Put(f.h, &v) }

// WelcomeMsg returns the message shown on entry.
func (f *Frame) WelcomeMsg() (string, error)  { return propWelcomeMsg.Get(f.h) }
func (f *Frame) SetWelcomeMsg(v string) error { return propWelcomeMsg.Put(f.h, &v) }

// BaseURL returns the base URL for links generated by the control.
func (f *Frame) BaseURL() (string, error)  { return propBaseURL.Get(f.h) }
func (f *Frame) SetBaseURL(v string) error { return propBaseURL.Put(f.h, &v) }

// CreateRoom returns a non-empty value when the room should be created if
// missing.
func (f *Frame) CreateRoom() (string, error)  { return propCreateRoom.Get(f.h) }
func (f *Frame) SetCreateRoom(v string) error { return propCreateRoom.Put(f.h, &v) }

// ChatHome returns the chat home page URL.
func (f *Frame) ChatHome() (string, error)  { return propChatHome.Get(f.h) }
func (f *Frame) SetChatHome(v string) error { return propChatHome.Put(f.h, &v) }

// Locale returns the UI locale.
func (f *Frame) Locale() (string, error)  { return propLocale.Get(f.h) }
func (f *Frame) SetLocale(v string) error { return propLocale.Put(f.h, &v) }

// ResDLL returns the resource library name.
func (f *Frame) ResDLL() (string, error)  { return propResDLL.Get(f.h) }
func (f *Frame) SetResDLL(v string) error { return propResDLL.Put(f.h, &v) }

// PassportTicket returns the authentication ticket.
func (f *Frame) PassportTicket() (string, error)  { return propPassportTicket.Get(f.h) }
func (f *Frame) SetPassportTicket(v string) error { return propPassportTicket.Put(f.h, &v) }

// PassportProfile returns the authentication profile.
func (f *Frame) PassportProfile() (string, error)  { return propPassportProfile.Get(f.h) }
func (f *Frame) SetPassportProfile(v string) error { return propPassportProfile.Put(f.h, &v) }

// MessageOfTheDay returns the server message of the day.
func (f *Frame) MessageOfTheDay() (string, error)  { return propMessageOfTheDay.Get(f.h) }
func (f *Frame) SetMessageOfTheDay(v string) error { return propMessageOfTheDay.Put(f.h, &v) }

// ChannelLanguage returns the room language.
func (f *Frame) ChannelLanguage() (string, error)  { return propChannelLanguage.Get(f.h) }
func (f *Frame) SetChannelLanguage(v string) error { return propChannelLanguage.Put(f.h, &v) }

// InvitationCode returns the invitation code for private rooms.
func (f *Frame) InvitationCode() (string, error)  { return propInvitationCode.Get(f.h) }
func (f *Frame) SetInvitationCode(v string) error { return propInvitationCode.Put(f.h, &v) }

// NicknameToInvite returns the nickname invited on join.
func (f *Frame) NicknameToInvite() (string, error)  { return propNicknameToInvite.Get(f.h) }
func (f *Frame) SetNicknameToInvite(v string) error { return propNicknameToInvite.Put(f.h, &v) }

// MSNREGCookie returns the registration cookie.
func (f *Frame) MSNREGCookie() (string, error)  { return propMSNREGCookie.Get(f.h) }
func (f *Frame) SetMSNREGCookie(v string) error { return propMSNREGCookie.Put(f.h, &v) }

// CreationModes returns the channel modes applied on creation.
func (f *Frame) CreationModes() (string, error)  { return propCreationModes.Get(f.h) }
func (f *Frame) SetCreationModes(v string) error { return propCreationModes.Put(f.h, &v) }

// MSNProfile returns the profile cookie.
func (f *Frame) MSNProfile() (string, error)  { return propMSNProfile.Get(f.h) }
func (f *Frame) SetMSNProfile(v string) error { return propMSNProfile.Put(f.h, &v) }

// Market returns the market code.
func (f *Frame) Market() (string, error)  { return propMarket.Get(f.h) }
func (f *Frame) SetMarket(v string) error { return propMarket.Put(f.h, &v) }

// WhisperContent returns the content for whisper windows.
func (f *Frame) WhisperContent() (string, error)  { return propWhisperContent.Get(f.h) }
func (f *Frame) SetWhisperContent(v string) error { return propWhisperContent.Put(f.h, &v) }

// UserRole returns the role the user joins with.
func (f *Frame) UserRole() (string, error)  { return propUserRole.Get(f.h) }
func (f *Frame) SetUserRole(v string) error { return propUserRole.Put(f.h, &v) }

// AuditMessage returns the audit banner text.
func (f *Frame) AuditMessage() (string, error)  { return propAuditMessage.Get(f.h) }
func (f *Frame) SetAuditMessage(v string) error { return propAuditMessage.Put(f.h, &v) }

// SubscriberInfo returns the subscriber cookie.
func (f *Frame) SubscriberInfo() (string, error)  { return propSubscriberInfo.Get(f.h) }
func (f *Frame) SetSubscriberInfo(v string) error { return propSubscriberInfo.Put(f.h, &v) }

// UpsellURL returns the upgrade offer URL.
func (f *Frame) UpsellURL() (string, error)  { return propUpsellURL.Get(f.h) }
func (f *Frame) SetUpsellURL(v string) error { return propUpsellURL.Put(f.h, &v) }
