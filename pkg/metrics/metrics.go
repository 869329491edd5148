package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videogame_api_requests_total",
		Help: "The total number of handled requests by operation and outcome",
	}, []string{"operation", "outcome"})

	// Service Metrics
	GamesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videogame_api_games_created_total",
		Help: "The total number of games created",
	})
	AuthorizationDenialsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videogame_api_authorization_denials_total",
		Help: "The total number of mutations denied by the allow-list or ownership check",
	})
	StoreErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videogame_api_store_errors_total",
		Help: "The total number of persistence layer failures",
	})

	// Bootstrap Metrics
	AllowListFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videogame_api_allowlist_fallbacks_total",
		Help: "The total number of startups that fell back to the default developer",
	})
	AllowListDevelopersLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "videogame_api_allowlist_developers_loaded",
		Help: "The number of approved developers loaded at startup",
	})
)
