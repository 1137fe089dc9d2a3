package chatframe

import (
	"context"

	"github.com/ircx/chatframe-go/pkg/com"
)

var settingsLayout = com.IUnknownLayout

const (
	settingsBackColor = iota
	settingsForeColor
	settingsRedirectURL
	settingsResDLL
)

var (
	propSettingsBackColor   = com.ScalarAt[com.Color](settingsLayout, "BackColor", settingsBackColor)
	propSettingsForeColor   = com.ScalarAt[com.Color](settingsLayout, "ForeColor", settingsForeColor)
	propSettingsRedirectURL = settingsLayout.TextAt("RedirectURL", settingsRedirectURL)
	propSettingsResDLL      = settingsLayout.TextAt("ResDLL", settingsResDLL)
)

var settingsFields = []Field{
	colorField(propSettingsBackColor),
	colorField(propSettingsForeColor),
	textField(propSettingsRedirectURL, false),
	textField(propSettingsResDLL, false),
}

// Settings is a live IChatSettings reference: the host-wide defaults the
// control falls back to when a Frame leaves a property unset.
type Settings struct {
	*object
}

// NewSettings creates the settings object and returns its IChatSettings
// interface.
func NewSettings(ctx context.Context, r *com.Resolver, cfg Config) (*Settings, error) {
	h, err := r.Resolve(ctx, CLSIDChatSettings, IIDIChatSettings)
	if err != nil {
		return nil, err
	}
	return &Settings{object: newObject(h, settingsFields, cfg.logger())}, nil
}

func (s *Settings) BackColor() (com.Color, error)  { return propSettingsBackColor.Get(s.h) }
func (s *Settings) SetBackColor(v com.Color) error { return propSettingsBackColor.Put(s.h, &v) }

func (s *Settings) ForeColor() (com.Color, error)  { return propSettingsForeColor.Get(s.h) }
func (s *Settings) SetForeColor(v com.Color) error { return propSettingsForeColor.Put(s.h, &v) }

// RedirectURL is where the control sends the browser when it raises a
// redirect without a URL of its own.
func (s *Settings) RedirectURL() (string, error)  { return propSettingsRedirectURL.Get(s.h) }
func (s *Settings) SetRedirectURL(v string) error { return propSettingsRedirectURL.Put(s.h, &v) }

func (s *Settings) ResDLL() (string, error)  { return propSettingsResDLL.Get(s.h) }
func (s *Settings) SetResDLL(v string) error { return propSettingsResDLL.Put(s.h, &v) }
