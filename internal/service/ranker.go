package service

import (
	"sort"

	"safar/internal/domain"
)

// rankRoutes orders candidates by the requested optimization. The sort is
// stable so equal candidates keep their synthesis order. An unknown
// optimization value returns the candidates unsorted; that is the designed
// default, not an error.
func rankRoutes(routes []domain.RouteOption, optimization domain.OptimizationType) []domain.RouteOption {
	switch optimization {
	case domain.OptimizeCheapest:
		sort.SliceStable(routes, func(i, j int) bool {
			return routes[i].TotalPrice < routes[j].TotalPrice
		})
	case domain.OptimizeFastest:
		sort.SliceStable(routes, func(i, j int) bool {
			return routes[i].DurationMinutes < routes[j].DurationMinutes
		})
	case domain.OptimizeReliable:
		sort.SliceStable(routes, func(i, j int) bool {
			return routes[i].TotalReliability > routes[j].TotalReliability
		})
	}
	return routes
}
