package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cambaeats/config"
	"cambaeats/internal/domain/repository"
	"cambaeats/internal/domain/service"
	"cambaeats/internal/usecase"

	"go.uber.org/fx"
)

// CartSessionsParams holds the dependencies shared by every session cart.
type CartSessionsParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Config    *config.Config
	Gateway   service.CartGateway
	Catalog   service.ProductCatalog
	Pointers  repository.SessionPointerProvider
	ClientLog service.ClientLogger
	Logger    *slog.Logger
}

type sessionEntry struct {
	cart     usecase.CartUsecase
	lastSeen time.Time
}

// subscribedCart reports live Subscribe streams; carts with one are never evicted.
type subscribedCart interface {
	subscriberCount() int
}

type cartSessions struct {
	params     CartSessionsParams
	opts       CartEngineOptions
	idleTTL    time.Duration
	sweepEvery time.Duration
	now        func() time.Time

	mu        sync.Mutex
	carts     map[string]*sessionEntry
	listeners []func(sessionID string)

	stop chan struct{}
	done chan struct{}
}

// NewCartSessions creates the registry holding one cart engine per client
// session. Carts idle for longer than cart.sessionIdleTTL are evicted by a
// sweeper started on the fx lifecycle.
func NewCartSessions(params CartSessionsParams) usecase.CartSessions {
	s := &cartSessions{
		params:     params,
		opts:       CartEngineOptionsFromConfig(params.Config),
		idleTTL:    params.Config.Cart.SessionIdleTTL,
		sweepEvery: params.Config.Cart.SessionSweepInterval,
		now:        time.Now,
		carts:      make(map[string]*sessionEntry),
	}

	if params.Lc != nil && s.idleTTL > 0 && s.sweepEvery > 0 {
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				s.startSweeper()

				return nil
			},
			OnStop: func(ctx context.Context) error {
				return s.stopSweeper(ctx)
			},
		})
	}

	return s
}

func (s *cartSessions) Get(sessionID string) usecase.CartUsecase {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.carts[sessionID]; ok {
		entry.lastSeen = s.now()

		return entry.cart
	}

	cart := NewCartEngine(
		s.params.Gateway,
		s.params.Catalog,
		s.params.Pointers.ForSession(sessionID),
		s.params.ClientLog,
		s.params.Logger.With(slog.String("session_id", sessionID)),
		s.opts,
	)
	s.carts[sessionID] = &sessionEntry{cart: cart, lastSeen: s.now()}

	return cart
}

func (s *cartSessions) Drop(sessionID string) {
	s.mu.Lock()
	_, ok := s.carts[sessionID]
	delete(s.carts, sessionID)
	listeners := s.listeners
	s.mu.Unlock()

	if ok {
		notifyDropped(listeners, sessionID)
	}
}

func (s *cartSessions) OnDrop(fn func(sessionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

// sweep evicts carts not seen since now minus the idle TTL and returns how many went.
func (s *cartSessions) sweep(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	var evicted []string
	for id, entry := range s.carts {
		if entry.lastSeen.After(cutoff) {
			continue
		}
		if sc, ok := entry.cart.(subscribedCart); ok && sc.subscriberCount() > 0 {
			continue
		}
		delete(s.carts, id)
		evicted = append(evicted, id)
	}
	listeners := s.listeners
	remaining := len(s.carts)
	s.mu.Unlock()

	for _, id := range evicted {
		notifyDropped(listeners, id)
	}

	if len(evicted) > 0 {
		s.params.Logger.Debug("Evicted idle session carts",
			slog.Int("evicted", len(evicted)),
			slog.Int("remaining", remaining),
		)
	}

	return len(evicted)
}

func (s *cartSessions) startSweeper() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.sweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.sweep(s.now())
			}
		}
	}()
}

func (s *cartSessions) stopSweeper(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func notifyDropped(listeners []func(string), sessionID string) {
	for _, fn := range listeners {
		fn(sessionID)
	}
}
