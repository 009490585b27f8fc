package dbmetrics

import "context"

// txContextKey ключ для хранения активной транзакции в контексте
type txContextKey struct{}

// InjectTx кладет активную транзакцию в контекст
// Репозитории извлекают её через GetExecutor, что позволяет выполнять
// несколько операций репозиториев в рамках одной транзакции
func InjectTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть,
// иначе переданный executor по умолчанию
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction проверяет, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
