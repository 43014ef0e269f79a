package observability

const (
	MUsecaseRequests    MetricKey = "usecase_requests_total"
	MUsecaseDuration    MetricKey = "usecase_duration_seconds"
	MOrdersPlaced       MetricKey = "orders_placed_total"
	MOrderTotalPrice    MetricKey = "order_total_price"
	MProductsSoldOut    MetricKey = "products_sold_out_total"
	MEventPublishErrors MetricKey = "event_publish_failed_total"
)
