package metrics

import (
	pgxpoolprom "github.com/IBM/pgxpoolprometheus"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, runtime metrics and process collectors.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return promRegistry
}

// RegisterPgxPoolCollector exposes pgx connection pool stats on the
// given registry.
func RegisterPgxPoolCollector(reg *prometheus.Registry, pool *pgxpool.Pool, dbName string) {
	collector := pgxpoolprom.NewCollector(pool, map[string]string{"db_name": dbName})
	reg.MustRegister(collector)
}
