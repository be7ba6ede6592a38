package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"anchorpoint-it.com/infopanel/internal/system"
)

type templateData struct {
	DateTime string
	PublicIP string
}

type ipResponse struct {
	IP string `json:"ip"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	// AJAX refresh fragments
	if refreshType := r.URL.Query().Get("refresh"); refreshType != "" {
		switch refreshType {
		case "datetime":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(app.currentDateTime()))
		case "ip":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(app.lookupForDisplay(r)))
		default:
			http.Error(w, "Unknown refresh type", http.StatusBadRequest)
		}
		return
	}

	app.render(w, "home", &templateData{})
}

func (app *Application) dateTime(w http.ResponseWriter, r *http.Request) {
	app.render(w, "datetime", &templateData{DateTime: app.currentDateTime()})
}

// publicIP shows the looked-up address. A failed lookup renders an
// empty value with status 200; the failure is only logged.
func (app *Application) publicIP(w http.ResponseWriter, r *http.Request) {
	app.render(w, "ip", &templateData{PublicIP: app.lookupForDisplay(r)})
}

func (app *Application) apiPublicIP(w http.ResponseWriter, r *http.Request) {
	res := app.resolver.Resolve(r.Context())
	if !res.OK() {
		respondJSON(w, http.StatusBadGateway, &errorResponse{Error: res.Failure.Kind.String()})
		return
	}
	respondJSON(w, http.StatusOK, &ipResponse{IP: res.Address})
}

func (app *Application) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (app *Application) currentDateTime() string {
	return system.FormatDateTime(app.now(), app.layout)
}

func (app *Application) lookupForDisplay(r *http.Request) string {
	res := app.resolver.Resolve(r.Context())
	if !res.OK() {
		app.logger.Info("public ip unavailable for display",
			zap.String("path", r.URL.Path),
			zap.Stringer("kind", res.Failure.Kind))
		return ""
	}
	return res.Address
}

func (app *Application) render(w http.ResponseWriter, page string, data *templateData) {
	ts, ok := app.pages[page]
	if !ok {
		app.logger.Error("template not found", zap.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ts.ExecuteTemplate(w, "base", data); err != nil {
		app.logger.Error("template error", zap.String("page", page), zap.Error(err))
	}
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
