package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cambaeats/config"
	deliverycontext "cambaeats/internal/delivery/context"
	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/domain/repository"
	"cambaeats/internal/domain/service"
	"cambaeats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxProductLookups bounds the product resolution fan-out of one cart load.
const maxProductLookups = 8

// CartEngineOptions tunes a cart engine.
type CartEngineOptions struct {
	// SerializeMutations holds an operation lock across backend calls so that
	// operations of one engine never interleave.
	SerializeMutations bool

	// CreateStrategy is config.CreateStrategyFindOrCreate or config.CreateStrategyCreate.
	CreateStrategy string

	// FallbackPrefix starts every identifier synthesized in local-fallback mode.
	FallbackPrefix string

	Now   func() time.Time
	NewID func() string
}

// CartEngineOptionsFromConfig maps the cart section of the configuration.
func CartEngineOptionsFromConfig(cfg *config.Config) CartEngineOptions {
	return CartEngineOptions{
		SerializeMutations: cfg.Cart.SerializeMutations,
		CreateStrategy:     cfg.Cart.CreateStrategy,
		FallbackPrefix:     cfg.Cart.FallbackPrefix,
	}
}

type cartEngine struct {
	gateway   service.CartGateway
	catalog   service.ProductCatalog
	pointer   repository.SessionPointerStore
	clientLog service.ClientLogger
	logger    *slog.Logger
	opts      CartEngineOptions

	// opMu is only taken when opts.SerializeMutations is set.
	opMu sync.Mutex

	mu      sync.RWMutex
	ref     entity.CartRef
	items   []entity.LineItem
	loading bool
	open    bool
	// persisted is the cart ID last read from or written to the pointer store.
	persisted string

	subsMu  sync.Mutex
	subs    map[int]chan entity.CartState
	nextSub int
}

// NewCartEngine creates the cart of one client session.
func NewCartEngine(
	gateway service.CartGateway,
	catalog service.ProductCatalog,
	pointer repository.SessionPointerStore,
	clientLog service.ClientLogger,
	logger *slog.Logger,
	opts CartEngineOptions,
) usecase.CartUsecase {
	if opts.FallbackPrefix == "" {
		opts.FallbackPrefix = "temp-"
	}
	if opts.CreateStrategy == "" {
		opts.CreateStrategy = config.CreateStrategyFindOrCreate
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &cartEngine{
		gateway:   gateway,
		catalog:   catalog,
		pointer:   pointer,
		clientLog: clientLog,
		logger:    logger,
		opts:      opts,
		subs:      make(map[int]chan entity.CartState),
	}
}

func (e *cartEngine) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// beginOp takes the operation lock when mutations are serialized and returns its release.
func (e *cartEngine) beginOp() func() {
	if !e.opts.SerializeMutations {
		return func() {}
	}
	e.opMu.Lock()

	return e.opMu.Unlock
}

// Initialize resumes the persisted cart or obtains a fresh one for userID.
func (e *cartEngine) Initialize(ctx context.Context, userID string) {
	defer e.beginOp()()

	e.setLoading(true)
	defer e.setLoading(false)

	logger := e.loggerFrom(ctx).With(slog.String("user_id", userID))

	ref, items, err := e.resolveCart(ctx, logger, userID)
	if err != nil {
		ref = entity.LocalFallbackCart(e.opts.FallbackPrefix + e.opts.NewID())
		items = nil

		logger.Warn("Backend unreachable, cart switched to local fallback mode",
			slog.String("cart_id", ref.ID),
			slog.Any("error", err),
		)
		e.clientLog.Log(ctx, service.ClientLogEntry{
			Level:   service.LogLevelWarn,
			Message: "cart initialization fell back to local mode",
			Data: map[string]any{
				"user_id": userID,
				"cart_id": ref.ID,
				"error":   err.Error(),
			},
			SessionID: deliverycontext.GetSessionIDFromContext(ctx),
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		})
	}

	e.replaceCart(ctx, ref, items)
}

// resolveCart returns the cart to use for userID. An error means the backend
// could not provide any cart at all.
func (e *cartEngine) resolveCart(ctx context.Context, logger *slog.Logger, userID string) (entity.CartRef, []entity.LineItem, error) {
	storedID, ok := e.loadPointer(ctx, logger)
	if !ok {
		cart, err := e.obtainCart(ctx, userID)
		if err != nil {
			return entity.CartRef{}, nil, err
		}
		logger.Info("Cart created", slog.String("cart_id", cart.ID))

		return entity.RemoteCart(cart.ID), []entity.LineItem{}, nil
	}

	items, err := e.loadCart(ctx, storedID)
	if err != nil {
		logger.Warn("Stored cart could not be loaded, requesting a fresh one",
			slog.String("cart_id", storedID),
			slog.Any("error", err),
		)

		cart, err := e.obtainCart(ctx, userID)
		if err != nil {
			return entity.CartRef{}, nil, err
		}
		logger.Info("Cart created after stale pointer", slog.String("cart_id", cart.ID))

		return entity.RemoteCart(cart.ID), []entity.LineItem{}, nil
	}

	logger.Info("Cart loaded", slog.String("cart_id", storedID), slog.Int("items", len(items)))

	return entity.RemoteCart(storedID), items, nil
}

func (e *cartEngine) loadPointer(ctx context.Context, logger *slog.Logger) (string, bool) {
	if e.pointer == nil {
		return "", false
	}

	cartID, ok, err := e.pointer.Load(ctx)
	if err != nil {
		logger.Warn("Failed to read session pointer, starting without one", slog.Any("error", err))

		return "", false
	}
	if !ok || cartID == "" {
		return "", false
	}

	e.mu.Lock()
	e.persisted = cartID
	e.mu.Unlock()

	return cartID, true
}

// obtainCart asks the backend for a fresh cart using the configured strategy.
func (e *cartEngine) obtainCart(ctx context.Context, userID string) (*entity.Cart, error) {
	var (
		cart *entity.Cart
		err  error
	)
	if e.opts.CreateStrategy == config.CreateStrategyCreate {
		cart, err = e.gateway.CreateCart(ctx, userID)
	} else {
		cart, err = e.gateway.FindOrCreateCart(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain cart")
	}
	if cart == nil || cart.ID == "" {
		return nil, errors.New("backend returned a cart without identifier")
	}

	return cart, nil
}

// loadCart fetches cartID and resolves the product of every active line item.
func (e *cartEngine) loadCart(ctx context.Context, cartID string) ([]entity.LineItem, error) {
	cart, err := e.gateway.GetCart(ctx, cartID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get cart %s", cartID)
	}
	if cart == nil {
		return nil, errors.Errorf("cart %s: empty response", cartID)
	}
	if !cart.HasLineItems {
		return []entity.LineItem{}, nil
	}

	items := cart.ActiveLineItems()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxProductLookups)
	for i := range items {
		g.Go(func() error {
			product, err := e.catalog.GetProduct(gctx, items[i].ProductID)
			if err != nil {
				return errors.Wrapf(err, "failed to resolve product %s", items[i].ProductID)
			}
			if product == nil {
				return errors.Errorf("product %s: empty response", items[i].ProductID)
			}
			items[i].Product = *product

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// replaceCart swaps the whole cart state and persists the identifier when it
// differs from the stored one.
func (e *cartEngine) replaceCart(ctx context.Context, ref entity.CartRef, items []entity.LineItem) {
	e.mu.Lock()
	e.ref = ref
	e.items = items
	changed := e.persisted != ref.ID
	e.persisted = ref.ID
	e.mu.Unlock()

	if changed {
		e.persistPointer(ctx, ref)
	}
	e.publish()
}

func (e *cartEngine) persistPointer(ctx context.Context, ref entity.CartRef) {
	if e.pointer == nil {
		return
	}

	var err error
	if ref.IsZero() {
		err = e.pointer.Clear(ctx)
	} else {
		err = e.pointer.Save(ctx, ref.ID)
	}
	if err != nil {
		e.loggerFrom(ctx).Warn("Failed to persist session pointer",
			slog.String("cart_id", ref.ID),
			slog.Any("error", err),
		)
	}
}

// AddItem adds quantity units of product, merging into an existing line.
func (e *cartEngine) AddItem(ctx context.Context, product *entity.Product, quantity int) error {
	if product == nil || product.ID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	defer e.beginOp()()

	return e.addItem(ctx, product, quantity)
}

func (e *cartEngine) addItem(ctx context.Context, product *entity.Product, quantity int) error {
	e.mu.RLock()
	ref := e.ref
	existing, found := findActiveByProduct(e.items, product.ID)
	e.mu.RUnlock()

	if ref.IsZero() {
		return domainerrors.ErrCartNotInitialized
	}

	logger := e.loggerFrom(ctx).With(
		slog.String("cart_id", ref.ID),
		slog.String("product_id", product.ID),
	)

	if found {
		logger.Debug("Product already in cart, increasing quantity", slog.String("line_item_id", existing.ID))

		return e.setQuantity(ctx, existing.ID, existing.Quantity+quantity)
	}

	if ref.IsLocal() {
		now := e.opts.Now()
		item := entity.LineItem{
			ID:        e.opts.FallbackPrefix + "item-" + e.opts.NewID(),
			CartID:    ref.ID,
			ProductID: product.ID,
			Product:   *product,
			Quantity:  quantity,
			IsActive:  true,
			Local:     true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		e.mutate(func(items []entity.LineItem) []entity.LineItem {
			return append(items, item)
		})
		logger.Debug("Item added locally", slog.String("line_item_id", item.ID))

		return nil
	}

	created, err := e.gateway.CreateLineItem(ctx, entity.LineItemInput{
		CartID:    ref.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	})
	if err != nil {
		logger.Error("Failed to add item", slog.Any("error", err))

		return errors.Wrap(err, "failed to create line item")
	}

	item := *created
	item.Product = *product
	item.ProductID = product.ID
	item.CartID = ref.ID
	item.IsActive = true
	item.Local = false
	if item.Quantity < 1 {
		item.Quantity = quantity
	}

	applied := e.mutateIfCurrent(ref, func(items []entity.LineItem) []entity.LineItem {
		return append(items, item)
	})
	if !applied {
		logger.Warn("Cart changed while adding item, dropping stale line", slog.String("line_item_id", item.ID))

		return nil
	}
	logger.Debug("Item added", slog.String("line_item_id", item.ID))

	return nil
}

// RemoveItem drops a line item. Unknown IDs are ignored.
func (e *cartEngine) RemoveItem(ctx context.Context, lineItemID string) error {
	defer e.beginOp()()

	return e.removeItem(ctx, lineItemID)
}

func (e *cartEngine) removeItem(ctx context.Context, lineItemID string) error {
	e.mu.RLock()
	ref := e.ref
	item, found := findByID(e.items, lineItemID)
	e.mu.RUnlock()

	if !found {
		return nil
	}

	logger := e.loggerFrom(ctx).With(
		slog.String("cart_id", ref.ID),
		slog.String("line_item_id", lineItemID),
	)

	if ref.IsLocal() || item.Local {
		e.mutate(func(items []entity.LineItem) []entity.LineItem {
			return withoutID(items, lineItemID)
		})
		logger.Debug("Item removed locally")

		return nil
	}

	if err := e.gateway.DeleteLineItem(ctx, lineItemID); err != nil {
		logger.Error("Failed to remove item", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete line item")
	}

	e.mutateIfCurrent(ref, func(items []entity.LineItem) []entity.LineItem {
		return withoutID(items, lineItemID)
	})
	logger.Debug("Item removed")

	return nil
}

// SetQuantity sets the quantity of a line item; quantity <= 0 removes it.
func (e *cartEngine) SetQuantity(ctx context.Context, lineItemID string, quantity int) error {
	defer e.beginOp()()

	return e.setQuantity(ctx, lineItemID, quantity)
}

func (e *cartEngine) setQuantity(ctx context.Context, lineItemID string, quantity int) error {
	if quantity <= 0 {
		return e.removeItem(ctx, lineItemID)
	}

	e.mu.RLock()
	ref := e.ref
	item, found := findByID(e.items, lineItemID)
	e.mu.RUnlock()

	if !found {
		return domainerrors.ErrLineItemNotFound.WithDetails(lineItemID)
	}

	logger := e.loggerFrom(ctx).With(
		slog.String("cart_id", ref.ID),
		slog.String("line_item_id", lineItemID),
		slog.Int("quantity", quantity),
	)

	if ref.IsLocal() || item.Local {
		now := e.opts.Now()
		e.mutate(func(items []entity.LineItem) []entity.LineItem {
			return withQuantity(items, lineItemID, quantity, now)
		})
		logger.Debug("Quantity updated locally")

		return nil
	}

	updated, err := e.gateway.UpdateLineItem(ctx, lineItemID, quantity)
	if err != nil {
		logger.Error("Failed to update quantity", slog.Any("error", err))

		return errors.Wrap(err, "failed to update line item")
	}

	updatedAt := e.opts.Now()
	if updated != nil && !updated.UpdatedAt.IsZero() {
		updatedAt = updated.UpdatedAt
	}
	e.mutateIfCurrent(ref, func(items []entity.LineItem) []entity.LineItem {
		return withQuantity(items, lineItemID, quantity, updatedAt)
	})
	logger.Debug("Quantity updated")

	return nil
}

// ClearCart forgets the current cart and its persisted identifier. Remote
// line items are left alone: the backend empties the cart when it becomes an order.
func (e *cartEngine) ClearCart(ctx context.Context) {
	defer e.beginOp()()

	e.mu.Lock()
	ref := e.ref
	if ref.IsZero() {
		e.mu.Unlock()

		return
	}
	e.ref = entity.CartRef{}
	e.items = nil
	e.persisted = ""
	e.mu.Unlock()

	e.persistPointer(ctx, entity.CartRef{})
	e.loggerFrom(ctx).Info("Cart cleared",
		slog.String("cart_id", ref.ID),
		slog.String("mode", ref.Mode.String()),
	)
	e.publish()
}

// ToggleOpen flips the UI visibility flag and returns the new value.
func (e *cartEngine) ToggleOpen() bool {
	e.mu.Lock()
	e.open = !e.open
	open := e.open
	e.mu.Unlock()

	e.publish()

	return open
}

// Total is the sum of unit price times quantity over all line items.
func (e *cartEngine) Total() decimal.Decimal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return entity.SumTotal(e.items)
}

// ItemCount is the sum of quantities over all line items.
func (e *cartEngine) ItemCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return entity.SumQuantity(e.items)
}

// Items returns a copy of the current line items.
func (e *cartEngine) Items() []entity.LineItem {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return cloneItems(e.items)
}

// Ref returns the current cart reference.
func (e *cartEngine) Ref() entity.CartRef {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.ref
}

// Snapshot returns a consistent copy of the whole cart state.
func (e *cartEngine) Snapshot() entity.CartState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return entity.CartState{
		CartID:    e.ref.ID,
		Mode:      e.ref.Mode,
		Items:     cloneItems(e.items),
		IsLoading: e.loading,
		IsOpen:    e.open,
		Total:     entity.SumTotal(e.items),
		ItemCount: entity.SumQuantity(e.items),
	}
}

// Subscribe streams a snapshot after every state change. Slow subscribers
// only see the latest snapshot.
func (e *cartEngine) Subscribe() (<-chan entity.CartState, func()) {
	ch := make(chan entity.CartState, 1)

	e.subsMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	e.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.subsMu.Lock()
			delete(e.subs, id)
			e.subsMu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (e *cartEngine) subscriberCount() int {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()

	return len(e.subs)
}

func (e *cartEngine) publish() {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()

	if len(e.subs) == 0 {
		return
	}

	state := e.Snapshot()
	for _, ch := range e.subs {
		select {
		case ch <- state:
		default:
			// Replace the unread snapshot with the newer one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}

func (e *cartEngine) setLoading(loading bool) {
	e.mu.Lock()
	e.loading = loading
	e.mu.Unlock()

	e.publish()
}

// mutate applies fn to the line items and notifies subscribers.
func (e *cartEngine) mutate(fn func([]entity.LineItem) []entity.LineItem) {
	e.mu.Lock()
	e.items = fn(e.items)
	e.mu.Unlock()

	e.publish()
}

// mutateIfCurrent applies fn only while ref is still the current cart.
func (e *cartEngine) mutateIfCurrent(ref entity.CartRef, fn func([]entity.LineItem) []entity.LineItem) bool {
	e.mu.Lock()
	if e.ref != ref {
		e.mu.Unlock()

		return false
	}
	e.items = fn(e.items)
	e.mu.Unlock()

	e.publish()

	return true
}

func findActiveByProduct(items []entity.LineItem, productID string) (entity.LineItem, bool) {
	for _, item := range items {
		if item.IsActive && item.ProductID == productID {
			return item, true
		}
	}

	return entity.LineItem{}, false
}

func findByID(items []entity.LineItem, lineItemID string) (entity.LineItem, bool) {
	for _, item := range items {
		if item.ID == lineItemID {
			return item, true
		}
	}

	return entity.LineItem{}, false
}

func withoutID(items []entity.LineItem, lineItemID string) []entity.LineItem {
	return slices.DeleteFunc(cloneItems(items), func(item entity.LineItem) bool {
		return item.ID == lineItemID
	})
}

func withQuantity(items []entity.LineItem, lineItemID string, quantity int, at time.Time) []entity.LineItem {
	updated := cloneItems(items)
	for i := range updated {
		if updated[i].ID == lineItemID {
			updated[i].Quantity = quantity
			updated[i].UpdatedAt = at
		}
	}

	return updated
}

func cloneItems(items []entity.LineItem) []entity.LineItem {
	if items == nil {
		return []entity.LineItem{}
	}

	return slices.Clone(items)
}
