package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"github.com/gorilla/websocket"
)

// ErrChannelClosed is returned when writing to a channel that is no longer open.
var ErrChannelClosed = errors.New("feed: channel closed")

// State describes where a channel is in its lifecycle.
type State int32

const (
	// StateConnecting means no batch has been received yet.
	StateConnecting State = iota
	// StateLive means at least one batch has been received and the
	// connection is still up.
	StateLive
	// StateStalled means the connection failed or the server went away.
	// The channel stays readable but never updates again.
	StateStalled
	// StateClosed means Close was called.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateLive:
		return "live"
	case StateStalled:
		return "stalled"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Conn is the subset of *websocket.Conn a channel needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer opens streaming connections.
type Dialer interface {
	Dial(ctx context.Context, rawURL string) (Conn, error)
}

// WebsocketDialer dials with gorilla/websocket.
type WebsocketDialer struct {
	Dialer *websocket.Dialer
	Header http.Header
}

// NewWebsocketDialer returns a dialer with the given handshake timeout.
func NewWebsocketDialer(handshakeTimeout time.Duration) *WebsocketDialer {
	return &WebsocketDialer{
		Dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

// Dial implements Dialer.
func (d *WebsocketDialer) Dial(ctx context.Context, rawURL string) (Conn, error) {
	dialer := d.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, resp, err := dialer.DialContext(ctx, rawURL, d.Header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", rawURL, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}
	return conn, nil
}

// StreamURL joins base and path and attaches query.
func StreamURL(base, path string, query url.Values) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + path)
	if err != nil {
		return "", fmt.Errorf("invalid stream url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return "", fmt.Errorf("invalid stream url scheme %q", u.Scheme)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// Options configures a Channel.
type Options struct {
	// URL is the fully qualified stream URL, query included.
	URL string
	// Order is the merge order of the local collection.
	Order MergeOrder
	// MaxItems caps the local collection; <= 0 means unbounded.
	MaxItems int
	// KeepaliveInterval is how often RefreshMessage is sent; <= 0 disables.
	KeepaliveInterval time.Duration
	// RefreshMessage is the text nudging the server to flush updates.
	RefreshMessage string
	// RefreshOnOpen sends RefreshMessage once right after connecting.
	RefreshOnOpen bool
	// OnMerge, if set, is called after every merged batch with the number
	// of records added. It runs on the reader goroutine.
	OnMerge func(added int)
}

// Channel is a live, deduplicated view of records pushed over one streaming
// connection. The reader goroutine is the only writer of the collection.
type Channel[T Record] struct {
	opts       Options
	conn       Conn
	collection *Collection[T]
	logger     *logger.Logger

	mu     sync.Mutex
	closed bool

	writeMu sync.Mutex
	state   atomic.Int32
	lastErr atomic.Value

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// Open dials opts.URL and starts the reader and keepalive loops. The
// channel lives until Close is called or ctx is cancelled.
func Open[T Record](ctx context.Context, dialer Dialer, opts Options, log *logger.Logger) (*Channel[T], error) {
	if log == nil {
		log = logger.NewNop()
	}
	if opts.RefreshMessage == "" && (opts.RefreshOnOpen || opts.KeepaliveInterval > 0) {
		return nil, errors.New("feed: refresh message required when keepalive is enabled")
	}

	conn, err := dialer.Dial(ctx, opts.URL)
	if err != nil {
		log.Error("Failed to open feed channel", logger.ErrorField(err), logger.StringField("url", opts.URL))
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	c := &Channel[T]{
		opts:       opts,
		conn:       conn,
		collection: NewCollection[T](opts.Order, opts.MaxItems),
		logger:     log.With(logger.StringField("url", opts.URL)),
		cancel:     cancel,
	}
	c.state.Store(int32(StateConnecting))

	if opts.RefreshOnOpen {
		if err := c.send(opts.RefreshMessage); err != nil {
			c.logger.Warn("Failed to send initial refresh", logger.ErrorField(err))
		}
	}

	c.wg.Add(2)
	utils.GoSafe(func() {
		defer c.wg.Done()
		c.readLoop(runCtx)
	})
	utils.GoSafe(func() {
		defer c.wg.Done()
		<-runCtx.Done()
		c.closeErr = c.conn.Close()
	})

	if opts.KeepaliveInterval > 0 {
		c.wg.Add(1)
		utils.GoSafe(func() {
			defer c.wg.Done()
			c.keepalive(runCtx)
		})
	}

	c.logger.Info("Feed channel opened",
		logger.StringField("order", opts.Order.String()),
		logger.DurationField("keepalive", opts.KeepaliveInterval))
	return c, nil
}

// OnBatch merges batch into the collection and returns how many records
// were added. Batches arriving after Close are ignored.
func (c *Channel[T]) OnBatch(batch []T) int {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}
	added := c.collection.Merge(batch)
	c.state.CompareAndSwap(int32(StateConnecting), int32(StateLive))
	c.mu.Unlock()

	if c.opts.OnMerge != nil {
		c.opts.OnMerge(added)
	}
	return added
}

// Items returns a snapshot of the collection.
func (c *Channel[T]) Items() []T {
	return c.collection.Items()
}

// Len returns the collection size.
func (c *Channel[T]) Len() int {
	return c.collection.Len()
}

// State returns the current lifecycle state.
func (c *Channel[T]) State() State {
	return State(c.state.Load())
}

// Err returns the error that stalled the channel, if any.
func (c *Channel[T]) Err() error {
	if err, ok := c.lastErr.Load().(error); ok {
		return err
	}
	return nil
}

// Refresh sends the refresh message immediately.
func (c *Channel[T]) Refresh() error {
	return c.send(c.opts.RefreshMessage)
}

// Close releases the connection and stops both loops. It is safe to call
// more than once; only the first call does any work.
func (c *Channel[T]) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		if c.State() != StateStalled {
			c.writeMu.Lock()
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			c.writeMu.Unlock()
		}
		c.state.Store(int32(StateClosed))
		c.cancel()
		c.wg.Wait()
		c.logger.Info("Feed channel closed", logger.IntField("items", c.Len()))
	})
	return c.closeErr
}

func (c *Channel[T]) readLoop(ctx context.Context) {
	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || c.isClosed() {
				return
			}
			c.stall(err)
			return
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}

		batch, err := decodeBatch[T](data)
		if err != nil {
			c.logger.Warn("Skipping malformed feed payload", logger.ErrorField(err), logger.IntField("bytes", len(data)))
			continue
		}

		added := c.OnBatch(batch)
		c.logger.Debug("Merged feed batch",
			logger.IntField("received", len(batch)),
			logger.IntField("added", added),
			logger.IntField("total", c.Len()))
	}
}

func (c *Channel[T]) keepalive(ctx context.Context) {
	ticker := time.NewTicker(c.opts.KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.send(c.opts.RefreshMessage); err != nil {
				if errors.Is(err, ErrChannelClosed) {
					return
				}
				c.logger.Warn("Failed to send keepalive refresh", logger.ErrorField(err))
			}
		}
	}
}

// stall moves the channel out of its loading state after a transport
// failure. No retry is attempted.
func (c *Channel[T]) stall(err error) {
	c.lastErr.Store(err)
	if c.state.CompareAndSwap(int32(StateConnecting), int32(StateStalled)) ||
		c.state.CompareAndSwap(int32(StateLive), int32(StateStalled)) {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			c.logger.Info("Feed channel closed by server", logger.ErrorField(err))
		} else {
			c.logger.Error("Feed channel stalled", logger.ErrorField(err))
		}
	}
	c.cancel()
}

func (c *Channel[T]) send(text string) error {
	switch c.State() {
	case StateStalled, StateClosed:
		return ErrChannelClosed
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		return fmt.Errorf("failed to write refresh: %w", err)
	}
	return nil
}

func (c *Channel[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// decodeBatch accepts a JSON array of records or a single record object.
func decodeBatch[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty payload")
	}

	if trimmed[0] == '{' {
		var one T
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}
		return []T{one}, nil
	}

	var batch []T
	if err := json.Unmarshal(trimmed, &batch); err != nil {
		return nil, fmt.Errorf("failed to decode batch: %w", err)
	}
	return batch, nil
}
