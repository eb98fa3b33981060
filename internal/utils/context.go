package utils

import (
	"context"

	"github.com/Divy2308/Synobiz/internal/models"
)

type ctxKey string

// CtxPrincipal carries the authenticated identity for the request.
const CtxPrincipal ctxKey = "principal"

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, CtxPrincipal, p)
}

func GetPrincipal(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(CtxPrincipal).(models.Principal)
	return p, ok
}
