package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	appstore "github.com/minicart/storefront/internal/application/store"
	"github.com/minicart/storefront/internal/config"
	"github.com/minicart/storefront/internal/domain/catalog"
	domstore "github.com/minicart/storefront/internal/domain/store"
	"github.com/minicart/storefront/internal/infrastructure/bus"
	"github.com/minicart/storefront/internal/infrastructure/id"
	"github.com/minicart/storefront/internal/infrastructure/memory"
	"github.com/minicart/storefront/internal/infrastructure/observability/oteltrace"
	"github.com/minicart/storefront/internal/infrastructure/observability/prometrics"
	"github.com/minicart/storefront/internal/infrastructure/observability/telemetry"
	"github.com/minicart/storefront/internal/infrastructure/observability/zaplogger"
	stockworker "github.com/minicart/storefront/internal/infrastructure/stock/worker"
	"github.com/minicart/storefront/internal/observability"
	"github.com/minicart/storefront/internal/presentation/cli"
)

func main() {
	cfg := config.Load()

	logger := zaplogger.Must(
		observability.F("service", cfg.ServiceName),
		observability.F("env", cfg.Env),
	)
	tel := telemetry.New(
		oteltrace.New(cfg.ServiceName),
		logger,
		prometrics.New(cfg.ServiceName),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventBus := bus.New(tel.Logger())
	eventBus.Start(ctx)
	defer eventBus.Stop(context.Background())

	stockWorker := stockworker.New(eventBus, tel)
	stockWorker.Start()

	st := demoStore()
	receipts := memory.NewOrderRepository()

	placeOrder := appstore.NewPlaceOrderUseCase(st, receipts, id.NewUUIDGenerator(), eventBus, tel)
	service := appstore.NewService(st, receipts, tel)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

		go func() {
			tel.Logger().Info("metrics_server_start",
				observability.F("addr", metricsServer.Addr),
			)
			err := metricsServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				tel.Logger().Error("metrics_server_error",
					observability.F("error", err.Error()),
				)
			}
		}()
	}

	menu := cli.New(service, placeOrder, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		tel.Logger().Error("menu_exited",
			observability.F("error", err.Error()),
		)
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			tel.Logger().Error("metrics_server_shutdown_error",
				observability.F("error", err.Error()),
			)
		}
	}
}

// demoStore builds the initial inventory and promotion catalog.
func demoStore() *domstore.Store {
	macbook := mustProduct(catalog.NewProduct("MacBook Air M2", 1450, 100))
	earbuds := mustProduct(catalog.NewProduct("Bose QuietComfort Earbuds", 250, 500))
	pixel := mustProduct(catalog.NewProduct("Google Pixel 7", 500, 250))

	license, err := catalog.NewNonStockedProduct("Windows License", 125)
	if err != nil {
		panic(err)
	}
	shipping, err := catalog.NewLimitedProduct("Shipping", 10, 250, 1)
	if err != nil {
		panic(err)
	}

	macbook.SetPromotion(catalog.NewSecondHalfPrice("Second Half price!"))
	earbuds.SetPromotion(catalog.NewThirdOneFree("Third One Free!"))
	license.SetPromotion(catalog.NewPercentDiscount("30% off!", 30))

	return domstore.New(macbook, earbuds, pixel, license, shipping)
}

func mustProduct(p *catalog.StandardProduct, err error) *catalog.StandardProduct {
	if err != nil {
		panic(err)
	}
	return p
}
