package civic

import (
	"context"

	"github.com/emmayyque/community-issue-tracker-app/internal/api"
	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// ActiveNotices lists the announcements currently published by the
// authorities, newest ordering as the server returns it.
func (c *Client) ActiveNotices(ctx context.Context) ([]types.Notice, error) {
	return api.ListActiveNotices(ctx, c.http, c.baseURL)
}
