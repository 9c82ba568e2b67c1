package devicesync

import (
	"context"
	"fmt"
	"sync"

	"github.com/gobeaver/streamkit"
)

// Transport is the device-synchronization channel collaborator. It moves
// bytes to and from the tethered device; paths are passed through unmodified
// (backslash-separated, device-rooted).
type Transport interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
	CreateDir(ctx context.Context, path string) error
	List(ctx context.Context, path string) ([]streamkit.FileInfo, error)
	Close() error
}

// Dialer establishes a transport connection to the device.
type Dialer func(ctx context.Context) (Transport, error)

// Conn wraps a Dialer into a lazily established, reusable connection. The
// first operation dials; later operations reuse the same transport. Dialing
// and access are mutex-guarded so a Conn can be shared between goroutines.
type Conn struct {
	mu   sync.Mutex
	dial Dialer
	t    Transport
}

// NewConn creates a connection that will dial with d on first use.
func NewConn(d Dialer) *Conn {
	return &Conn{dial: d}
}

// Transport returns the established transport, dialing it first if needed.
func (c *Conn) Transport(ctx context.Context) (Transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.t != nil {
		return c.t, nil
	}

	t, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	c.t = t
	return t, nil
}

// Close tears the connection down. A later operation dials again.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.t == nil {
		return nil
	}
	err := c.t.Close()
	c.t = nil
	return err
}

// ============================================================================
// Dialer registry and the process-wide shared connection
// ============================================================================

var (
	dialersMu sync.RWMutex
	dialers   = map[string]Dialer{
		"memory": func(ctx context.Context) (Transport, error) {
			return NewMemTransport(), nil
		},
	}
)

// RegisterDialer registers a named transport dialer. The embedding
// application registers its real device channel here and selects it through
// the STREAMKIT_DEVICE_DIALER config value.
func RegisterDialer(name string, d Dialer) {
	dialersMu.Lock()
	defer dialersMu.Unlock()
	dialers[name] = d
}

var (
	connMu     sync.Mutex
	sharedConn *Conn
)

// SharedConn returns the process-wide device connection, creating it from the
// named dialer on first call. At most one logical connection to the device
// exists; every backend instance reuses it.
func SharedConn(dialerName string) (*Conn, error) {
	connMu.Lock()
	defer connMu.Unlock()

	if sharedConn != nil {
		return sharedConn, nil
	}

	dialersMu.RLock()
	d, ok := dialers[dialerName]
	dialersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("device dialer %q not registered", dialerName)
	}

	sharedConn = NewConn(d)
	return sharedConn, nil
}
