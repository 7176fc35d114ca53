package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ErrExhausted возвращается, когда все попытки исчерпаны
var ErrExhausted = errors.New("retry: attempts exhausted")

// Budget ограничение на количество попыток и паузы между ними
type Budget struct {
	MaxAttempts     uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBudget 3 попытки с экспоненциальной паузой
var DefaultBudget = Budget{
	MaxAttempts:     3,
	InitialInterval: 50 * time.Millisecond,
	MaxInterval:     500 * time.Millisecond,
}

// Do выполняет op, повторяя её, пока retryable(err) == true и бюджет не исчерпан.
// Ошибки, для которых retryable возвращает false, возвращаются сразу без повторов.
// После исчерпания бюджета возвращается ошибка, оборачивающая ErrExhausted и последнюю ошибку.
func Do(ctx context.Context, budget Budget, retryable func(error) bool, op func(ctx context.Context) error) error {
	if budget.MaxAttempts == 0 {
		budget.MaxAttempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = budget.InitialInterval
	b.MaxInterval = budget.MaxInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := op(ctx); err != nil {
			if !retryable(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxTries(budget.MaxAttempts))

	if err == nil {
		return nil
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	if retryable(err) {
		return fmt.Errorf("%w: %w", ErrExhausted, err)
	}
	return err
}
