package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minicart/storefront/internal/application"
	"github.com/minicart/storefront/internal/domain/catalog"
	domevent "github.com/minicart/storefront/internal/domain/event"
	domorder "github.com/minicart/storefront/internal/domain/order"
	domstore "github.com/minicart/storefront/internal/domain/store"
	"github.com/minicart/storefront/internal/observability"
	"github.com/minicart/storefront/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	storeService      = "store-service"
	useCaseOrderPlace = "order.place"
	spanPrefix        = "UC."
	publishTimeout    = 300 * time.Millisecond
)

var (
	ErrEmptyOrder = errors.New("store: order must contain at least one line")
	ErrRepository = errors.New("store: repository failure")
)

var _ application.UseCase[PlaceOrderInput, *PlaceOrderResult] = (*PlaceOrderUseCase)(nil)

// PlaceOrderUseCase fulfills a batch order against the store, records a
// receipt, and publishes the order.placed event, with observability hooks
// around the whole flow.
type PlaceOrderUseCase struct {
	store       *domstore.Store
	receipts    domorder.Repository
	idGenerator IDGenerator
	publisher   domevent.Publisher
	tel         observability.Observability

	log observability.Logger

	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
	ordersPlaced observability.Counter   // orders_placed_total{outcome}
	orderTotals  observability.Histogram // order_total_price{use_case}
	publishFails observability.Counter   // event_publish_failed_total{event}
}

// NewPlaceOrderUseCase wires the dependencies required to execute the use case.
func NewPlaceOrderUseCase(
	st *domstore.Store,
	receipts domorder.Repository,
	idGen IDGenerator,
	publisher domevent.Publisher,
	tel observability.Observability,
) *PlaceOrderUseCase {
	if tel == nil {
		tel = observability.Nop()
	}
	baseLog := tel.Logger().With(observability.F("service", storeService))
	metrics := tel.Metrics()

	return &PlaceOrderUseCase{
		store:        st,
		receipts:     receipts,
		idGenerator:  idGen,
		publisher:    publisher,
		tel:          tel,
		log:          baseLog,
		reqCounter:   metrics.Counter(observability.MUsecaseRequests),
		durHistogram: metrics.Histogram(observability.MUsecaseDuration),
		ordersPlaced: metrics.Counter(observability.MOrdersPlaced),
		orderTotals:  metrics.Histogram(observability.MOrderTotalPrice),
		publishFails: metrics.Counter(observability.MEventPublishErrors),
	}
}

type PlaceOrderInput struct {
	Lines []domstore.Line
}

type PlaceOrderResult struct {
	ReceiptID string
	Total     float64
}

// Execute performs the order flow. Line fulfillment is delegated to the
// store and is not transactional: stock consumed by lines that succeeded
// before a failing line stays consumed, and no receipt is recorded for the
// aborted order.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, cmd PlaceOrderInput) (_ *PlaceOrderResult, err error) {
	logger := logctx.FromOr(ctx, uc.log).With(observability.F("use_case", useCaseOrderPlace))

	var publishErr error

	ctx, span := uc.tel.Tracer().Start(ctx, spanPrefix+"PlaceOrder",
		attribute.String("use_case", useCaseOrderPlace),
		attribute.Int("order.line_count", len(cmd.Lines)),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"

	defer func() {
		lat := time.Since(start).Seconds()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		uc.reqCounter.Add(1,
			observability.L("use_case", useCaseOrderPlace),
			observability.L("outcome", outcome),
		)
		uc.durHistogram.Observe(lat,
			observability.L("use_case", useCaseOrderPlace),
		)
		uc.ordersPlaced.Add(1, observability.L("outcome", outcome))

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if publishErr != nil {
			fields = append(fields, observability.F("event_publish_error", publishErr.Error()))
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}

		logger.Info("use_case_done", fields...)
	}()

	if len(cmd.Lines) == 0 {
		outcome, statusText = "error", "EMPTY_ORDER"
		return nil, ErrEmptyOrder
	}
	if err := ctx.Err(); err != nil {
		outcome, statusText = "error", "CONTEXT_CANCELED"
		return nil, err
	}

	soldOutBefore := soldOutProducts(cmd.Lines)

	total, err := uc.store.Order(cmd.Lines)
	if err != nil {
		outcome, statusText = "error", orderStatusText(err)
		return nil, err
	}

	receiptLines := make([]domorder.ReceiptLine, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		receiptLines = append(receiptLines, domorder.ReceiptLine{
			ProductName: line.Product.Name(),
			Quantity:    line.Quantity,
		})
	}

	receipt, derr := domorder.NewReceipt(uc.idGenerator.NewID(), receiptLines, total)
	if derr != nil {
		outcome, statusText = "error", "RECEIPT_CONSTRUCTION_FAILED"
		return nil, fmt.Errorf("store: receipt: %w", derr)
	}
	if err := uc.receipts.Insert(ctx, receipt); err != nil {
		outcome, statusText = "error", "REPO_INSERT_FAILED"
		return nil, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	uc.orderTotals.Observe(total, observability.L("use_case", useCaseOrderPlace))

	soldOut := newlySoldOut(cmd.Lines, soldOutBefore)
	if uc.publisher != nil {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		publishErr = uc.publisher.Publish(pubCtx, domorder.NewOrderPlacedEvent(receipt, soldOut))
		cancel()
		if publishErr != nil {
			statusText = "EVENT_PUBLISH_FAILED"
			uc.publishFails.Add(1, observability.L("event", domorder.OrderPlacedEvent{}.EventName()))
		}
	}

	span.SetAttributes(attribute.Float64("order.total", total))
	span.AddEvent("order.placed",
		trace.WithAttributes(attribute.String("receipt.id", receipt.ID)),
	)

	return &PlaceOrderResult{ReceiptID: receipt.ID, Total: total}, nil
}

// soldOutProducts returns the set of line products that are already sold
// out before the order runs, so they are not re-reported afterwards.
func soldOutProducts(lines []domstore.Line) map[catalog.Product]bool {
	out := make(map[catalog.Product]bool)
	for _, line := range lines {
		if line.Product != nil && line.Product.Quantity() == 0 && !line.Product.IsActive() {
			out[line.Product] = true
		}
	}
	return out
}

func newlySoldOut(lines []domstore.Line, before map[catalog.Product]bool) []string {
	var names []string
	seen := make(map[catalog.Product]bool)
	for _, line := range lines {
		p := line.Product
		if p == nil || seen[p] || before[p] {
			continue
		}
		seen[p] = true
		if p.Quantity() == 0 && !p.IsActive() {
			names = append(names, p.Name())
		}
	}
	return names
}

func orderStatusText(err error) string {
	switch {
	case errors.Is(err, catalog.ErrOutOfStock):
		return "OUT_OF_STOCK"
	case errors.Is(err, catalog.ErrInvalidArgument):
		return "INVALID_ARGUMENT"
	case errors.Is(err, catalog.ErrUnsupportedOperation):
		return "UNSUPPORTED_OPERATION"
	default:
		return "ORDER_FAILED"
	}
}
