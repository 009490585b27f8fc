package middleware

import (
	"context"
	"net/http"
	"strings"
)

type userContextKey struct{}

// UserHeader заголовок с идентичностью вызывающего
const UserHeader = "X-User"

// Auth кладет идентичность вызывающего из заголовка X-User в контекст запроса
// Внешней аутентификации нет, сервис живет за шлюзом лагеря, поэтому пустой
// заголовок заменяется на defaultUser
func Auth(defaultUser string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := strings.TrimSpace(r.Header.Get(UserHeader))
			if user == "" {
				user = defaultUser
			}
			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser извлекает идентичность вызывающего из контекста
func GetUser(ctx context.Context) string {
	if user, ok := ctx.Value(userContextKey{}).(string); ok {
		return user
	}
	return ""
}
