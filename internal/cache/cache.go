package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tonmoytt/All-it-shopping-server/internal/database"
	"github.com/tonmoytt/All-it-shopping-server/internal/models"
)

const PostsCacheTTL = 5 * time.Minute

// GetUserPosts récupère le panier d'un utilisateur depuis Redis.
// Best-effort : un cache absent ou illisible vaut un miss.
func GetUserPosts(ctx context.Context, userID string) ([]models.CartPost, bool) {
	if database.Redis == nil {
		return nil, false
	}

	data, err := database.Redis.Get(ctx, "posts:"+userID).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var posts []models.CartPost
	if err := json.Unmarshal([]byte(data), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// SetUserPosts met le panier en cache
func SetUserPosts(ctx context.Context, userID string, posts []models.CartPost) {
	if database.Redis == nil {
		return
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, "posts:"+userID, data, PostsCacheTTL)
}

// InvalidateUserPosts invalide le cache après toute écriture sur le panier
func InvalidateUserPosts(ctx context.Context, userID string) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, "posts:"+userID)
}
