// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	SessionsCreated prometheus.Counter
	CartAdds        prometheus.Counter
	FavoriteToggles prometheus.Counter
	EnergyEarned    prometheus.Counter
	CoinsGranted    prometheus.Counter
	CheckoutsTotal  prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	sessions := prometheus.NewCounter(prometheus.CounterOpts{Name: "boom_sessions_created_total"})
	cartAdds := prometheus.NewCounter(prometheus.CounterOpts{Name: "boom_cart_adds_total"})
	favToggles := prometheus.NewCounter(prometheus.CounterOpts{Name: "boom_favorite_toggles_total"})
	energy := prometheus.NewCounter(prometheus.CounterOpts{Name: "boom_energy_earned_total"})
	coins := prometheus.NewCounter(prometheus.CounterOpts{Name: "boom_coins_granted_total"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{Name: "boom_checkouts_total"})

	r.MustRegister(sessions, cartAdds, favToggles, energy, coins, checkouts)
	return &Registry{
		reg:             r,
		SessionsCreated: sessions,
		CartAdds:        cartAdds,
		FavoriteToggles: favToggles,
		EnergyEarned:    energy,
		CoinsGranted:    coins,
		CheckoutsTotal:  checkouts,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
