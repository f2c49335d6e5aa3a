package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	ctshttp "github.com/jrh3k5/nft-price-checker/internal/http"
	"github.com/jrh3k5/nft-price-checker/internal/nft"
)

// TransportFailureMessage is shown for every failure that happens after validation.
const TransportFailureMessage = "Verify chain, contract address, and token ID are all valid."

// Option configures a Controller.
type Option func(*Controller)

// WithStateListener registers a function that receives every state the controller applies, in order.
// The listener is called while the controller's lock is held and must not call back into the controller.
func WithStateListener(listener func(State)) Option {
	return func(c *Controller) {
		c.listener = listener
	}
}

// Controller owns the lifecycle of NFT lookups: Idle, then Loading, then Success or Failure.
// Only the result of the most recent submission is ever applied; older in-flight
// requests are cancelled and their results discarded.
type Controller struct {
	doer     ctshttp.Doer
	builder  *nft.RequestBuilder
	listener func(State)

	mu     sync.Mutex
	state  State
	epoch  uint64
	cancel context.CancelFunc
}

// NewController creates a Controller that issues requests built by builder through doer.
func NewController(doer ctshttp.Doer, builder *nft.RequestBuilder, opts ...Option) *Controller {
	c := &Controller{
		doer:    doer,
		builder: builder,
		state:   Idle(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the current lookup state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Submit starts a lookup for the given input and returns a channel that is closed once
// this submission has resolved, whether or not its result was applied.
// Invalid input moves straight to Failure without any request being issued.
func (c *Controller) Submit(ctx context.Context, input nft.Input) <-chan struct{} {
	done := make(chan struct{})
	lookupID := uuid.NewString()

	request, buildErr := c.builder.Build(input)

	c.mu.Lock()
	c.epoch++
	epoch := c.epoch
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if buildErr != nil {
		c.applyLocked(Failure(validationMessage(buildErr)))
		c.mu.Unlock()

		slog.WarnContext(
			ctx,
			"Rejected NFT lookup input",
			"lookup_id", lookupID,
			"epoch", epoch,
			"error", buildErr,
		)
		close(done)

		return done
	}

	requestCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.applyLocked(Loading())
	c.mu.Unlock()

	slog.DebugContext(
		ctx,
		fmt.Sprintf("Requesting %s", request.URL()),
		"lookup_id", lookupID,
		"epoch", epoch,
	)

	go func() {
		defer close(done)
		defer cancel()

		raw, err := safeFetch(requestCtx, c.doer, request)
		c.resolve(requestCtx, lookupID, epoch, raw, err)
	}()

	return done
}

func (c *Controller) resolve(
	ctx context.Context,
	lookupID string,
	epoch uint64,
	raw map[string]any,
	fetchErr error,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		slog.DebugContext(
			ctx,
			"Discarding result of superseded NFT lookup",
			"lookup_id", lookupID,
			"epoch", epoch,
			"latest_epoch", c.epoch,
		)

		return
	}

	c.cancel = nil

	if fetchErr != nil {
		slog.ErrorContext(
			ctx,
			"NFT lookup failed",
			"lookup_id", lookupID,
			"epoch", epoch,
			"error", fetchErr,
		)
		c.applyLocked(Failure(TransportFailureMessage))

		return
	}

	slog.InfoContext(ctx, "NFT lookup succeeded", "lookup_id", lookupID, "epoch", epoch)
	c.applyLocked(Success(nft.Normalize(raw)))
}

func (c *Controller) applyLocked(state State) {
	c.state = state
	if c.listener != nil {
		c.listener(state)
	}
}

// safeFetch converts a panicking client into a TransportError.
func safeFetch(
	ctx context.Context,
	doer ctshttp.Doer,
	request *nft.Request,
) (raw map[string]any, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = nil
			err = &TransportError{cause: fmt.Errorf("http client panicked: %v", r)}
		}
	}()

	return fetch(ctx, doer, request)
}

func validationMessage(err error) string {
	var validationErr *nft.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.UserMessage()
	}

	return TransportFailureMessage
}
