package singleinstance

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const socketName = "clickcall.sock"

// maxLinkBytes bounds a forwarded link message.
const maxLinkBytes = 1024

// SocketPath resolves the per-user control socket location.
func SocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	return filepath.Join(os.TempDir(), socketName)
}

// Forward sends a link to a running primary instance. Returns an error when
// no primary is listening; the caller then handles the link itself.
func Forward(path, link string) error {
	conn, err := net.DialTimeout("unix", path, time.Second)
	if err != nil {
		return fmt.Errorf("no primary instance: %w", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(link)); err != nil {
		return fmt.Errorf("forward link: %w", err)
	}
	return nil
}

// Server owns the primary-instance socket and hands forwarded links to the
// handle callback, one goroutine per link.
type Server struct {
	ln     net.Listener
	handle func(link string)
	log    *slog.Logger
}

// Listen binds the control socket, replacing a stale socket file left behind
// by a crashed primary.
func Listen(path string, handle func(link string), log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	if _, err := os.Stat(path); err == nil {
		if probe, err := net.DialTimeout("unix", path, time.Second); err == nil {
			probe.Close()
			return nil, fmt.Errorf("primary instance already running on %s", path)
		}
		log.Debug("removing stale socket", slog.String("path", path))
		_ = os.Remove(path)
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("bind control socket %s: %w", path, err)
	}
	return &Server{ln: ln, handle: handle, log: log}, nil
}

// Serve accepts forwarded links until the context is canceled or the
// listener is closed.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, maxLinkBytes)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		return
	}
	link := strings.TrimSpace(string(buf[:n]))
	lower := strings.ToLower(link)
	if !strings.HasPrefix(lower, "tel:") && !strings.HasPrefix(lower, "callto:") {
		s.log.Debug("ignoring non-link message", slog.Int("bytes", n))
		return
	}
	s.handle(link)
}

// Close releases the socket.
func (s *Server) Close() error {
	return s.ln.Close()
}
