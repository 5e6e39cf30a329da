package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smartsupply/provenance-tracker/internal/config"
	"github.com/smartsupply/provenance-tracker/internal/httpapi/openapi"
	"github.com/smartsupply/provenance-tracker/internal/model"
	"github.com/smartsupply/provenance-tracker/internal/token"
	"github.com/smartsupply/provenance-tracker/internal/tracker"
)

// App wires the tracking engine to the HTTP surface.
type App struct {
	Cfg     config.Config
	Tracker *tracker.Tracker
	started time.Time
}

// NewApp constructs the HTTP application around a Tracker.
func NewApp(cfg config.Config, t *tracker.Tracker) *App {
	return &App{Cfg: cfg, Tracker: t, started: time.Now()}
}

// productResponse is a Product plus its freshly derived identity token.
type productResponse struct {
	*model.Product
	Token string `json:"token"`
}

func toProductResponse(p *model.Product) productResponse {
	return productResponse{Product: p, Token: token.Derive(p.ID, p.Name, p.BatchNumber)}
}

func toProductResponses(ps []*model.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

// ledgerEntryResponse is a LedgerEntry plus its rendered audit line.
type ledgerEntryResponse struct {
	model.LedgerEntry
	Line string `json:"line"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (a *App) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	p, err := a.Tracker.Register(tracker.RegisterInput{
		ID:            req.ID,
		Name:          req.Name,
		BatchNumber:   req.BatchNumber,
		Manufacturer:  req.Manufacturer,
		Distributor:   req.Distributor,
		Retailer:      req.Retailer,
		AssignedActor: req.AssignedActor,
		Lat:           req.Lat,
		Lon:           req.Lon,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(p))
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProductResponses(a.Tracker.ListAll()))
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := a.Tracker.Get(chi.URLParam(r, "id"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (a *App) provenanceHandler(w http.ResponseWriter, r *http.Request) {
	text, err := a.Tracker.RenderProvenance(chi.URLParam(r, "id"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (a *App) updateStatusByIDHandler(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	p, err := a.Tracker.UpdateStatusByID(chi.URLParam(r, "id"), req.Token, status, req.Actor)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (a *App) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	p, err := a.Tracker.UpdateStatus(req.Token, status, req.Actor)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (a *App) scanHandler(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	p, err := a.Tracker.FindByToken(req.Token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (a *App) flagHandler(w http.ResponseWriter, r *http.Request) {
	var req flagRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	p, err := a.Tracker.Flag(chi.URLParam(r, "id"), req.Actor)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (a *App) assignmentsHandler(w http.ResponseWriter, r *http.Request) {
	ps := a.Tracker.ListAssigned(chi.URLParam(r, "actor"))
	writeJSON(w, http.StatusOK, toProductResponses(ps))
}

func (a *App) ledgerHandler(w http.ResponseWriter, r *http.Request) {
	entries := a.Tracker.LedgerSnapshot()
	out := make([]ledgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ledgerEntryResponse{LedgerEntry: e, Line: e.Line()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsJSONHandler(w http.ResponseWriter, r *http.Request) {
	products, entries := a.Tracker.Counts()
	writeJSON(w, http.StatusOK, map[string]any{
		"products_total": products,
		"ledger_entries": entries,
		"uptime_sec":     time.Since(a.started).Seconds(),
	})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
