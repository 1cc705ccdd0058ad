package observability

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/tphakala/vowelnet/internal/conf"
	"github.com/tphakala/vowelnet/internal/errors"
	"github.com/tphakala/vowelnet/internal/logger"
	metricspkg "github.com/tphakala/vowelnet/internal/observability/metrics"
)

// Endpoint handles all operations related to Prometheus-compatible telemetry.
type Endpoint struct {
	server        *http.Server
	listenAddress string
	metrics       *Metrics
	log           logger.Logger

	mu   sync.Mutex
	addr net.Addr
}

// NewEndpoint creates a telemetry endpoint for metrics. It fails if telemetry
// is not enabled in the settings.
func NewEndpoint(settings *conf.Settings, metrics *Metrics) (*Endpoint, error) {
	if !settings.Telemetry.Enabled {
		return nil, errors.Newf("telemetry not enabled in settings").
			Component("observability").
			Category(errors.CategoryConfiguration).
			Build()
	}

	return &Endpoint{
		listenAddress: settings.Telemetry.Listen,
		metrics:       metrics,
		log:           logger.Global().Module("observability"),
	}, nil
}

// Start listens on the configured address and serves /metrics until ctx is
// done. Both server goroutines are tracked by wg.
func (e *Endpoint) Start(ctx context.Context, wg *sync.WaitGroup) error {
	mux := http.NewServeMux()
	e.metrics.RegisterHandlers(mux)

	ln, err := net.Listen("tcp", e.listenAddress)
	if err != nil {
		return errors.New(err).
			Component("observability").
			Category(errors.CategorySystem).
			Context("listen_address", e.listenAddress).
			Build()
	}

	e.mu.Lock()
	e.addr = ln.Addr()
	e.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: metricspkg.ShutdownTimeout,
	}
	server := e.server
	e.mu.Unlock()

	wg.Go(func() {
		e.log.Info("telemetry endpoint starting", logger.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			e.log.Error("telemetry HTTP server error", logger.Error(err))
		}
	})

	wg.Go(func() {
		e.gracefulShutdown(ctx)
	})

	return nil
}

// gracefulShutdown waits for ctx and shuts down the server.
func (e *Endpoint) gracefulShutdown(ctx context.Context) {
	<-ctx.Done()
	e.log.Info("stopping telemetry server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricspkg.ShutdownTimeout)
	defer cancel()
	if err := e.server.Shutdown(shutdownCtx); err != nil {
		e.log.Error("telemetry server shutdown error", logger.Error(err))
	}
}

// Addr returns the bound listen address, or nil before Start.
func (e *Endpoint) Addr() net.Addr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addr
}

// GetMetrics returns the Metrics instance associated with this Endpoint.
func (e *Endpoint) GetMetrics() *Metrics {
	return e.metrics
}
