package civic

import (
	"context"
	"strconv"

	"github.com/emmayyque/community-issue-tracker-app/internal/store"
)

// DarkMode reads the persisted theme flag. An absent or unreadable
// value defaults to light mode. The flag is independent of the session;
// logout does not touch it.
func (c *Client) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := c.store.Get(ctx, store.KeyThemeMode)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	dark, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return dark, nil
}

// SetDarkMode persists the theme flag.
func (c *Client) SetDarkMode(ctx context.Context, dark bool) error {
	return c.store.Set(ctx, store.KeyThemeMode, strconv.FormatBool(dark))
}
