package usecase

import (
	"context"
	"time"
)

// Clock is the trusted time source of the program.
type Clock interface {
	UnixTime(ctx context.Context) (int64, error)
}

type SystemClock struct{}

func (SystemClock) UnixTime(ctx context.Context) (int64, error) {
	return time.Now().Unix(), nil
}
