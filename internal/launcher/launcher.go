package launcher

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/studioutils/studioutils/internal/catalog"
	"github.com/studioutils/studioutils/internal/logging"
	"github.com/studioutils/studioutils/internal/metrics"
)

// DefaultBasePath is the studio route that tool ids are appended to.
const DefaultBasePath = "/desk"

// Target returns the navigation path for a tool: basePath + "/" + toolID,
// always rooted at "/" whether or not basePath carries slashes. It is pure
// and ignores the tool's status.
func Target(basePath, toolID string) string {
	base := strings.Trim(basePath, "/")
	if base == "" {
		return "/" + toolID
	}
	return "/" + base + "/" + toolID
}

// Launcher dispatches tools from a registry to an Opener.
type Launcher struct {
	reg       *catalog.Registry
	opener    Opener
	basePath  string
	studioURL string
	logger    *zap.Logger
	metrics   metrics.Recorder
	inflight  sync.WaitGroup
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithBasePath sets the route prefix (default "/desk").
func WithBasePath(p string) Option {
	return func(l *Launcher) {
		if p != "" {
			l.basePath = p
		}
	}
}

// WithStudioURL makes targets absolute by prefixing the studio origin.
func WithStudioURL(u string) Option {
	return func(l *Launcher) {
		l.studioURL = strings.TrimRight(u, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m metrics.Recorder) Option {
	return func(l *Launcher) {
		l.metrics = m
	}
}

// New creates a Launcher for reg that opens targets with opener.
func New(reg *catalog.Registry, opener Opener, opts ...Option) *Launcher {
	l := &Launcher{
		reg:      reg,
		opener:   opener,
		basePath: DefaultBasePath,
		metrics:  metrics.Nop{},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.OrNop(l.logger).Named("launcher")
	return l
}

// Resolve validates toolID and returns its target without opening it.
// It fails with *UnknownToolError for ids outside the registry and with
// *InvalidStateError for tools whose status is not available.
func (l *Launcher) Resolve(toolID string) (string, error) {
	tool, ok := l.reg.Lookup(toolID)
	if !ok {
		return "", &UnknownToolError{ID: toolID}
	}
	if !tool.Status.Launchable() {
		return "", &InvalidStateError{ID: toolID, Status: tool.Status}
	}
	return l.studioURL + Target(l.basePath, toolID), nil
}

// Launch resolves toolID and hands the target to the opener on a separate
// goroutine. It returns once dispatch has started; opener failures are
// logged, never reported to the caller.
func (l *Launcher) Launch(toolID string) error {
	target, err := l.Resolve(toolID)
	if err != nil {
		result := metrics.ResultUnknown
		if errors.Is(err, ErrInvalidState) {
			result = metrics.ResultRejected
		}
		l.metrics.ObserveLaunch(toolID, result)
		l.logger.Warn("launch rejected", zap.String("tool_id", toolID), zap.Error(err))
		return err
	}

	l.metrics.ObserveLaunch(toolID, metrics.ResultDispatched)
	l.logger.Info("launch dispatched", zap.String("tool_id", toolID), zap.String("target", target))

	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		if err := l.opener.Open(target); err != nil {
			l.logger.Error("opening target failed", zap.String("tool_id", toolID), zap.String("target", target), zap.Error(err))
		}
	}()
	return nil
}

// Wait blocks until every dispatched opener has returned. Short-lived
// processes such as the CLI call it before exiting so the open command is
// actually started; it is not a completion signal for the launched tool.
func (l *Launcher) Wait() {
	l.inflight.Wait()
}
