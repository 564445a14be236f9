package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	craftResultCrafted    = "crafted"
	craftResultSuppressed = "suppressed"
	craftResultNoMatch    = "no_match"
)

var (
	metricRecipesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridcraft_registry_recipes_added_total",
			Help: "Total number of recipes added to the registry",
		},
		[]string{"tier"},
	)
	metricRecipesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridcraft_registry_recipes_removed_total",
			Help: "Total number of recipes removed from the registry",
		},
	)
	metricUndone = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridcraft_registry_actions_undone_total",
			Help: "Total number of registry actions reverted",
		},
		[]string{"action"},
	)
	metricCrafts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridcraft_registry_crafts_total",
			Help: "Total number of craft attempts by result",
		},
		[]string{"result"},
	)
	metricRecipeCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridcraft_registry_recipes",
			Help: "Number of recipes currently in the most recently changed registry",
		},
	)
)
