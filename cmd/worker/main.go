package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	repository2 "github.com/asbrown77/bagile-platform-sub000/internal/adapter/persistence/repository"
	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/infrastructure/commerce"
	"github.com/asbrown77/bagile-platform-sub000/internal/infrastructure/database"
	"github.com/asbrown77/bagile-platform-sub000/internal/infrastructure/invoicing"
	"github.com/asbrown77/bagile-platform-sub000/internal/infrastructure/metrics"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

const metricsPort = ":9090"

// Organisation name variants that mark an internally billed order. Bookings
// under these names are the business's own re-bookings, which is what the
// transfer heuristic keys on.
var defaultOrgNames = []string{"b-agile", "bagile", "b agile"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb := database.ConnectDynamoDB()

	rawEventRepo := repository2.NewRawEventDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	studentRepo := repository2.NewStudentDynamoRepository(ddb)
	scheduleRepo := repository2.NewCourseScheduleDynamoRepository(ddb)
	enrolmentRepo := repository2.NewEnrolmentDynamoRepository(ddb)

	ingestUseCase := usecase.NewIngestUseCase(rawEventRepo)
	resolver := usecase.NewScheduleResolver(scheduleRepo)
	transferEngine := usecase.NewTransferEngine(enrolmentRepo, orderRepo, orgNamesFromEnv())

	ticketGateway := commerce.NewTicketClient(os.Getenv("WOOCOMMERCE_BASE_URL"), os.Getenv("TICKET_API_KEY"))
	wooParser := usecase.NewWooCommerceParser(ticketGateway)
	xeroParser := usecase.NewXeroInvoiceParser()

	processors := map[entities.Source]usecase.IRecordProcessor{
		entities.SourceWooCommerce: usecase.NewWooOrderProcessor(wooParser, orderRepo, studentRepo, enrolmentRepo, resolver, transferEngine),
		entities.SourceXero:        usecase.NewXeroInvoiceProcessor(xeroParser, orderRepo, transferEngine),
	}

	registry := metrics.NewRegistry()
	processor := usecase.NewBatchProcessor(rawEventRepo, processors, usecase.ProcessorConfig{}, registry)

	go serveMetrics(registry)
	go runCollectors(ctx, ingestUseCase, rawEventRepo, scheduleRepo)

	log.Printf("[worker][main] batch processor starting")
	for {
		if err := processor.Run(ctx); err != nil {
			log.Printf("[worker][main] batch run failed: %v", err)
		}
		select {
		case <-ctx.Done():
			log.Printf("[worker][main] shutting down")
			return
		case <-time.After(30 * time.Second):
		}
	}
}

// runCollectors pulls orders (and the WooCommerce product catalogue) on a
// fixed interval. Webhook ingest covers the live path; the collectors close
// the gap for deliveries that never arrived.
func runCollectors(ctx context.Context, ingest usecase.IIngestUseCase, raws interfaces.IRawEventRepository, schedules interfaces.ICourseScheduleRepository) {
	var collectors []*usecase.OrderCollector
	var products *usecase.ProductCollector

	woo, err := commerce.NewWooCommerceClient(
		os.Getenv("WOOCOMMERCE_BASE_URL"),
		os.Getenv("WOOCOMMERCE_CONSUMER_KEY"),
		os.Getenv("WOOCOMMERCE_CONSUMER_SECRET"),
	)
	if err != nil {
		log.Printf("[worker][main] WooCommerce collector not configured: %v", err)
	} else {
		collectors = append(collectors, usecase.NewOrderCollector(woo, ingest, raws, entities.SourceWooCommerce, usecase.CollectorConfig{}))
		products = usecase.NewProductCollector(woo, schedules, entities.SourceWooCommerce)
	}

	xero, err := invoicing.NewXeroClient(
		os.Getenv("XERO_BASE_URL"),
		os.Getenv("XERO_ACCESS_TOKEN"),
		os.Getenv("XERO_TENANT_ID"),
	)
	if err != nil {
		log.Printf("[worker][main] Xero collector not configured: %v", err)
	} else {
		collectors = append(collectors, usecase.NewOrderCollector(xero, ingest, raws, entities.SourceXero, usecase.CollectorConfig{}))
	}

	if len(collectors) == 0 {
		log.Printf("[worker][main] no collectors configured, webhook ingest only")
		return
	}

	interval := collectInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if products != nil {
			since := time.Now().Add(-2 * interval)
			if n, err := products.Collect(ctx, &since); err != nil {
				log.Printf("[worker][main] product collection failed: %v", err)
			} else if n > 0 {
				log.Printf("[worker][main] collected %d product updates", n)
			}
		}
		for _, c := range collectors {
			if n, err := c.Collect(ctx); err != nil {
				log.Printf("[worker][main] order collection failed: %v", err)
			} else if n > 0 {
				log.Printf("[worker][main] collected %d new order payloads", n)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func serveMetrics(registry *metrics.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())
	if err := http.ListenAndServe(metricsPort, mux); err != nil {
		log.Printf("[worker][main] metrics server stopped: %v", err)
	}
}

func orgNamesFromEnv() []string {
	raw := os.Getenv("INTERNAL_ORG_NAMES")
	if raw == "" {
		return defaultOrgNames
	}
	var names []string
	for _, n := range strings.Split(raw, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return defaultOrgNames
	}
	return names
}

func collectInterval() time.Duration {
	if raw := os.Getenv("COLLECT_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return 15 * time.Minute
}
