package middleware

import (
	"context"

	"scripthaven/app/models"
)

func GetUser(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
