package testutil

import (
	"context"
	"net/http"
)

type accountValue struct {
	acc   *account
	token string
}

func contextWithAccount(ctx context.Context, acc *account, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, accountValue{acc: acc, token: token})
}

func accountFrom(r *http.Request) (*account, string) {
	v, ok := r.Context().Value(ctxKey{}).(accountValue)
	if !ok {
		return nil, ""
	}
	return v.acc, v.token
}
