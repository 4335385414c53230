package interfaces

import (
	"context"
	"errors"
)

var ErrLockNotObtained = errors.New("order lock not obtained")

// UnlockFunc releases a lock obtained through IOrderLocker.
type UnlockFunc func(ctx context.Context) error

// IOrderLocker serializes appointment processing per order across service instances.
type IOrderLocker interface {
	Lock(ctx context.Context, orderID string) (UnlockFunc, error)
}
