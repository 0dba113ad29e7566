package testutils

import "context"

type accountKey struct{}

func withAccount(ctx context.Context, acc *Account) context.Context {
	return context.WithValue(ctx, accountKey{}, acc)
}

func accountFrom(ctx context.Context) *Account {
	acc, _ := ctx.Value(accountKey{}).(*Account)
	if acc == nil {
		return &Account{}
	}
	return acc
}
