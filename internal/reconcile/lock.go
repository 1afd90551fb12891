package reconcile

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// unlockScript deletes the lock key only when it still belongs to the
// caller, so a sweeper whose lock expired cannot release a newer one.
const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

type SweepLock struct {
	client     *redis.Client
	key        string
	value      string
	expiration time.Duration
}

func NewSweepLock(client *redis.Client, key, value string, expiration time.Duration) *SweepLock {
	return &SweepLock{
		client:     client,
		key:        key,
		value:      value,
		expiration: expiration,
	}
}

// TryLock acquires the lock with SET NX EX. Returns false when another
// sweeper already holds it.
func (l *SweepLock) TryLock(ctx context.Context) (bool, error) {
	return l.client.SetNX(ctx, l.key, l.value, l.expiration).Result()
}

func (l *SweepLock) Unlock(ctx context.Context) error {
	return l.client.Eval(ctx, unlockScript, []string{l.key}, l.value).Err()
}
