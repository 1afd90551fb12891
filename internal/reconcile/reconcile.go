package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bountylab/bountyhub/internal/domain"
)

const (
	lockKey        = "payout:reconcile:lock"
	lockExpiration = time.Minute * 2
)

var processingPayouts sync.Map

type PayoutRepo interface {
	FindStuckProcessing(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PayoutRequest, error)
}

type Resolver interface {
	ResolvePayout(ctx context.Context, payout domain.PayoutRequest) error
}

// Service periodically sweeps payouts stuck in processing and resolves
// each one against the gateway's record of the transfer. When several
// instances run, a redis lock keeps all but one sweeper idle.
type Service struct {
	payoutRepo     PayoutRepo
	resolver       Resolver
	redisClient    *redis.Client
	limit          uint32
	stuckAfter     time.Duration
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(payoutRepo PayoutRepo, resolver Resolver, redisClient *redis.Client) *Service {
	return &Service{
		payoutRepo:     payoutRepo,
		resolver:       resolver,
		redisClient:    redisClient,
		limit:          1000,
		stuckAfter:     time.Minute * 5,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Minute * 1,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	if s.redisClient != nil {
		lock := NewSweepLock(s.redisClient, lockKey, uuid.NewString(), lockExpiration)
		ok, err := lock.TryLock(ctx)
		if err != nil {
			zap.L().Error("Failed to acquire sweep lock", zap.Error(err))
			return
		}
		if !ok {
			return
		}
		defer func() {
			if err := lock.Unlock(ctx); err != nil {
				zap.L().Error("Failed to release sweep lock", zap.Error(err))
			}
		}()
	}

	cutoff := time.Now().Add(-s.stuckAfter)
	payouts, err := s.payoutRepo.FindStuckProcessing(ctx, cutoff, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch payouts for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payout := range payouts {
		payout := payout

		if _, loaded := processingPayouts.LoadOrStore(payout.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPayouts.Delete(payout.ID)
				return s.resolver.ResolvePayout(ctx, payout)
			})
			if err != nil {
				processingPayouts.Delete(payout.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling payouts", zap.Error(err))
	}
}
