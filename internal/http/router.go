package httpapi

import (
	"expvar"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/products", app.postProductHandler).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}", app.getProductHandler).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", app.deleteProductHandler).Methods(http.MethodDelete)
	r.HandleFunc("/products/{id:[0-9]+}/restock", app.restockProductHandler).Methods(http.MethodPost)
	r.HandleFunc("/products/{id:[0-9]+}/purchase", app.purchaseProductHandler).Methods(http.MethodPost)
	r.HandleFunc("/healthz", app.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/debug/metrics", app.metricsHandler).Methods(http.MethodGet)
	r.Handle("/debug/vars", expvar.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/debug/warehouse", app.warehouseDumpHandler).Methods(http.MethodGet)
	r.HandleFunc("/debug/sectors", app.sectorsHandler).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", app.openapiHandler).Methods(http.MethodGet)
	r.HandleFunc("/docs", app.docsHandler).Methods(http.MethodGet)
	return WithRequestID(WithLogging(r))
}
