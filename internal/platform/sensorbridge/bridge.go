// Package sensorbridge streams a phone's accelerometer into the game. The
// phone opens a small web page, pairs with a signed token and sends
// msgpack-encoded DeviceMotion samples over a websocket; the bridge writes
// each sample into the game's accelerometer cell.
package sensorbridge

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/marble-maze/internal/core"
	"github.com/vovakirdan/marble-maze/internal/games/maze"
)

//go:embed page.html
var page []byte

const (
	maxFrameSize = 512
	readWait     = 30 * time.Second
)

// Config holds bridge settings.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8077").
	Address string

	// PublicURL is the base URL the phone uses to reach the bridge. If
	// empty it is derived from the outbound interface address and Address.
	PublicURL string

	// Secret signs pairing tokens. Empty means a random per-process secret.
	Secret []byte

	// TokenTTL bounds how long a pairing link stays valid.
	TokenTTL time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8077",
		TokenTTL: 10 * time.Minute,
	}
}

// Bridge is an HTTP server feeding one accelerometer cell.
type Bridge struct {
	cfg      Config
	accel    *core.Latest[maze.Accel]
	tokens   *Tokens
	logger   *log.Logger
	upgrader websocket.Upgrader

	connected atomic.Int32
	frames    atomic.Uint64
}

// New creates a bridge writing samples into accel.
func New(cfg Config, accel *core.Latest[maze.Accel], logger *log.Logger) (*Bridge, error) {
	if accel == nil {
		return nil, errors.New("sensorbridge: no accelerometer cell")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tokens, err := NewTokens(cfg.Secret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &Bridge{
		cfg:    cfg,
		accel:  accel,
		tokens: tokens,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true // Non-browser clients don't send Origin
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return u.Host == r.Host
			},
		},
	}, nil
}

// Handler returns the bridge routes: the sensor page at / and the
// websocket at /ws.
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(page)
	})
	mux.HandleFunc("/ws", b.serveWS)
	return mux
}

// PairingURL issues a token for session and returns the link the phone
// should open.
func (b *Bridge) PairingURL(session string) (string, error) {
	base := b.cfg.PublicURL
	if base == "" {
		base = "http://" + advertisedHost(b.cfg.Address)
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("sensorbridge: public url: %w", err)
	}
	token, err := b.tokens.Issue(session)
	if err != nil {
		return "", err
	}
	u.Path = "/"
	u.RawQuery = url.Values{"token": {token}}.Encode()
	return u.String(), nil
}

// Connected returns the number of phones currently streaming.
func (b *Bridge) Connected() int {
	return int(b.connected.Load())
}

// Frames returns the number of samples accepted so far.
func (b *Bridge) Frames() uint64 {
	return b.frames.Load()
}

func (b *Bridge) serveWS(w http.ResponseWriter, r *http.Request) {
	session, err := b.tokens.Verify(r.URL.Query().Get("token"))
	if err != nil {
		b.logger.Warn("pairing rejected", "remote", r.RemoteAddr, "err", err)
		http.Error(w, "invalid pairing token", http.StatusUnauthorized)
		return
	}

	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	b.connected.Add(1)
	defer b.connected.Add(-1)
	b.logger.Info("sensor connected", "session", session, "remote", r.RemoteAddr)

	conn.SetReadLimit(maxFrameSize)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				b.logger.Warn("sensor read failed", "session", session, "err", err)
			}
			b.logger.Info("sensor disconnected", "session", session, "frames", b.frames.Load())
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		a, err := DecodeFrame(data)
		if err != nil {
			b.logger.Debug("frame dropped", "session", session, "err", err)
			continue
		}
		b.accel.Store(a)
		b.frames.Add(1)
	}
}

// ListenAndServe serves the bridge until ctx is cancelled.
func (b *Bridge) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              b.cfg.Address,
		Handler:           b.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	b.logger.Info("sensor bridge listening", "address", b.cfg.Address)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sensorbridge: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// advertisedHost picks a LAN address a phone on the same network can reach.
func advertisedHost(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}
	if host != "" && host != "0.0.0.0" && host != "::" {
		return net.JoinHostPort(host, port)
	}
	// UDP dial sends nothing; it only resolves the outbound interface.
	conn, err := net.Dial("udp", "192.0.2.1:9")
	if err != nil {
		return net.JoinHostPort("localhost", port)
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return net.JoinHostPort(addr.IP.String(), port)
	}
	return net.JoinHostPort("localhost", port)
}
