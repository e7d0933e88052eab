package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Colectores Prometheus de la aplicación. Se registran en el registry por
// defecto vía promauto; /metrics los expone con promhttp.
var (
	// HTTPRequestsTotal peticiones HTTP por método, ruta y status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventario_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration duración de peticiones HTTP en segundos.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventario_http_request_duration_seconds",
			Help:    "Duración de peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// StockMovementsTotal movimientos de stock registrados, por tipo.
	StockMovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventario_stock_movements_total",
			Help: "Total de movimientos de stock registrados",
		},
		[]string{"kind"},
	)

	// InsufficientStockTotal salidas rechazadas por stock insuficiente.
	InsufficientStockTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventario_insufficient_stock_total",
			Help: "Total de salidas rechazadas por stock insuficiente",
		},
	)
)
