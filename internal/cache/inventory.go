package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileHandleKeyPrefix = "profile:handle:%s"
	ProfileUserKeyPrefix   = "profile:user:%d"
	PostKeyPrefix          = "post:%d"
)

const (
	ProfileTTL = 10 * time.Minute
	PostTTL    = 5 * time.Minute
)

func ProfileHandleKey(handle string) string {
	return fmt.Sprintf(ProfileHandleKeyPrefix, handle)
}

func ProfileUserKey(userID uint) string {
	return fmt.Sprintf(ProfileUserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProfile drops both lookup paths for a profile. Pass every handle
// the profile was reachable under; a rename needs the old one dropped too.
func InvalidateProfile(ctx context.Context, userID uint, handles ...string) {
	Invalidate(ctx, ProfileUserKey(userID))
	for _, handle := range handles {
		if handle != "" {
			Invalidate(ctx, ProfileHandleKey(handle))
		}
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
