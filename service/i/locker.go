package i

import "context"

// UnlockFunc releases a lock obtained from a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker provides mutual exclusion keyed by name, possibly across processes.
type Locker interface {
	Lock(ctx context.Context, key string) (UnlockFunc, error)
}
