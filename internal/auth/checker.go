package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// GetLoggedUser returns the ID of the user the token belongs to,
	// or an error if the session is missing or expired.
	GetLoggedUser(ctx context.Context, token string) (string, error)
}

type loggedUserContextKey struct{}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, loggedUserContextKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(loggedUserContextKey{}).(string)
	return userID, ok
}
