package api

import (
	"context"

	"github.com/rpupo63/bilingual-portfolio-backend/models"
)

type keyType string

const (
	langKey keyType = "lang"
	userKey keyType = "user"
)

// ctxWithLang stores the resolved request language ("en" or "ar") on the
// context. Language state is request-scoped, never global.
func ctxWithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey, lang)
}

// LangFromContext returns the request language, defaulting to English.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey).(string); ok && lang != "" {
		return lang
	}
	return langEnglish
}

// ctxWithUser stores the authenticated admin on the context.
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated admin, or nil on public routes.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}
