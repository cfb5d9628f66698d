package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"marketboard/backend-go/internal/models"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	depsStatus := map[string]models.DepStatus{}
	ok := true
	if err := a.lookup.Health(ctx); err != nil {
		depsStatus["item_lookup"] = models.DepStatus{Ok: false, Error: err.Error()}
		ok = false
	} else {
		depsStatus["item_lookup"] = models.DepStatus{Ok: true}
	}
	if err := a.market.Health(ctx); err != nil {
		depsStatus["market_data"] = models.DepStatus{Ok: false, Error: err.Error()}
		ok = false
	} else {
		depsStatus["market_data"] = models.DepStatus{Ok: true}
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{
		Ok:         ok,
		TsISO:      nowISO(),
		Service:    "backend-go",
		Version:    os.Getenv("SERVICE_VERSION"),
		DepsStatus: depsStatus,
	})
}
