package filesystem

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/exec"
	"path"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/example/launchlist/internal/ports/secondary"
)

// DefaultPrintWait bounds how long Open waits for the viewer to fetch the document.
const DefaultPrintWait = 30 * time.Second

// OpenFunc hands a URL to the platform's document viewer.
type OpenFunc func(ctx context.Context, target string) error

// PrintLauncher implements secondary.PrintLauncher. The document is served from
// memory on a loopback listener that answers a single fetch and then shuts down,
// so nothing is written to disk. The page prints itself once loaded.
type PrintLauncher struct {
	open OpenFunc
	wait time.Duration
}

// NewPrintLauncher creates a launcher using the platform opener.
func NewPrintLauncher() *PrintLauncher {
	return &PrintLauncher{open: PlatformOpen, wait: DefaultPrintWait}
}

// NewPrintLauncherWith creates a launcher with an explicit opener and wait.
func NewPrintLauncherWith(open OpenFunc, wait time.Duration) *PrintLauncher {
	if wait <= 0 {
		wait = DefaultPrintWait
	}
	return &PrintLauncher{open: open, wait: wait}
}

// Open serves html at a one-time URL and asks the viewer to load it.
// It returns once the document was fetched, or with an error if the opener
// fails or the viewer does not fetch it in time.
func (l *PrintLauncher) Open(ctx context.Context, name string, html []byte) error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to start print listener: %w", err)
	}

	token := uuid.NewString()
	base := path.Base(name)
	docPath := "/" + token + "/" + base
	served := make(chan struct{})
	var delivered atomic.Bool

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != docPath {
			http.NotFound(w, r)
			return
		}
		if !delivered.CompareAndSwap(false, true) {
			http.Error(w, "document already delivered", http.StatusGone)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(html)
		close(served)
	})

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	go srv.Serve(ln)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	target := "http://" + ln.Addr().String() + "/" + token + "/" + url.PathEscape(base)
	if err := l.open(ctx, target); err != nil {
		return err
	}

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case <-served:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return fmt.Errorf("viewer did not load the print document within %s", l.wait)
	}
}

// PlatformOpen opens target with xdg-open, open, or the Windows URL handler.
func PlatformOpen(ctx context.Context, target string) error {
	name, args := openCommand(runtime.GOOS, target)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no document opener available: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, string(output))
	}
	return nil
}

func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Ensure PrintLauncher implements the interface
var _ secondary.PrintLauncher = (*PrintLauncher)(nil)

// OpenerAvailable reports whether the platform opener can be found on PATH.
func OpenerAvailable() (string, error) {
	name, _ := openCommand(runtime.GOOS, "")
	found, err := exec.LookPath(name)
	if err != nil {
		return name, fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	return found, nil
}
