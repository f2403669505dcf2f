package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/9seconds/ipmapper/providers"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeProviders(conf *config) ([]maplib.Provider, error) {
	rv := make([]maplib.Provider, 0, len(conf.GetProviders()))

	for _, v := range conf.GetProviders() {
		httpClient := makeNewHTTPClient(v.GetHTTPTimeout())
		params := v.GetSpecificParameters()

		switch v.GetName() {
		case providers.NameIPInfo:
			rv = append(rv, providers.NewIPInfo(httpClient, params))
		case providers.NameIPAPI:
			rv = append(rv, providers.NewIPAPI(httpClient, params))
		case providers.NameIPGeolocation:
			rv = append(rv, providers.NewIPGeolocation(httpClient, params))
		default:
			return nil, fmt.Errorf("unsupported provider name: %s", v.GetName())
		}
	}

	return rv, nil
}

// makeSelfLocator always uses ip-api.com, even if it is not listed in
// config: viewer location does not depend on a chosen provider.
func makeSelfLocator(conf *config) *maplib.SelfLocator {
	params := map[string]string{}

	for _, v := range conf.GetProviders() {
		if v.GetName() == providers.NameIPAPI {
			params = v.GetSpecificParameters()
		}
	}

	httpClient := makeNewHTTPClient(conf.GetHTTPTimeout())

	return maplib.NewSelfLocator(httpClient,
		conf.GetSelfIPURL(),
		providers.NewIPAPI(httpClient, params))
}

func makeMapper(conf *config, log *logger, metrics *maplib.Metrics) (*maplib.Mapper, error) {
	provs, err := makeProviders(conf)
	if err != nil {
		return nil, err
	}

	mapper, err := maplib.NewMapper(maplib.MapperOpts{
		Providers:   provs,
		SelfLocator: makeSelfLocator(conf),
		Logger:      log,
		Metrics:     metrics,
		Zoom:        conf.Map.GetZoom(),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create mapper: %w", err)
	}

	return mapper, nil
}

func makeNewHTTPClient(timeout time.Duration) maplib.HTTPClient {
	return maplib.NewHTTPClient(&http.Client{Timeout: timeout}, "ipmapper/"+version)
}
