package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ChefReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type actorKey struct{}

// Auth превращает заголовки шлюза X-User-ID и X-User-Role в domain.Actor.
// Оба заголовка обязательны. Роль system снаружи не принимается: её используют только фоновые задачи
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "отсутствует или некорректен заголовок X-User-ID")
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if role == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-Role")
			return
		}
		if !role.IsValid() || role == domain.RoleSystem {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-Role")
			return
		}

		ctx := WithActor(r.Context(), domain.Actor{UserID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithActor кладёт актора в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor достаёт актора, положенного Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}
