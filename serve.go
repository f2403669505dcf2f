package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/9seconds/ipmapper/maplib"
)

const shutdownTimeout = 10 * time.Second

func makeHTTPHandler(conf *config, log *logger, metrics *maplib.Metrics) (http.Handler, error) {
	mapper, err := makeMapper(conf, log, metrics)
	if err != nil {
		return nil, err
	}

	handler := maplib.NewHTTPHandler(maplib.HandlerOpts{
		Mapper:          mapper,
		Logger:          log,
		Metrics:         metrics,
		DefaultProvider: conf.GetDefaultProvider(),
		UploadLimit:     conf.GetUploadLimit(),
		RequestTimeout:  conf.GetRequestTimeout(),
		TileURL:         conf.Map.TileURL,
		TileAttribution: conf.Map.Attribution,
	})

	return withBasicAuth(handler, conf.BasicAuth), nil
}

func runServe(ctx context.Context, conf *config, log *logger) error {
	handler, err := makeHTTPHandler(conf, log, maplib.NewMetrics())
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", conf.GetListen())
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", conf.GetListen(), err)
	}

	return serveHTTP(ctx, listener, handler, log)
}

// serveHTTP runs until ctx is done. Requests in flight keep their own
// contexts: Shutdown lets them finish within shutdownTimeout.
func serveHTTP(ctx context.Context, listener net.Listener, handler http.Handler, log *logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		log.appLog.Info().Str("listen", listener.Addr().String()).Msg("Starting web UI")

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}

		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("cannot serve: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.appLog.Info().Msg("Shutting down")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cannot shutdown gracefully: %w", err)
	}

	return nil
}
