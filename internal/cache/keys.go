package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	postKeyPrefix        = "post:%d"
	profileKeyPrefix     = "profile:user:%d"
	githubReposKeyPrefix = "github:repos:%s"
)

const (
	PostTTL        = 5 * time.Minute
	ProfileTTL     = 5 * time.Minute
	GithubReposTTL = 10 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

func GithubReposKey(username string) string {
	return fmt.Sprintf(githubReposKeyPrefix, username)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}
