package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterDocsRoutes mounts the API reference:
//
//	GET /                  redirect to /docs
//	GET /docs              rendered reference
//	GET /docs/openapi      parsed document as JSON
//	GET /docs/openapi.yaml embedded source document
func RegisterDocsRoutes(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
	})
	r.Get("/docs", serveReference)
	r.Get("/docs/openapi", serveDocumentJSON)
	r.Get("/docs/openapi.yaml", serveDocumentYAML)
}

func serveDocumentJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func serveDocumentYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapiYAML) //nolint:errcheck // client went away
}

func serveReference(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(referenceHTML)) //nolint:errcheck // client went away
}

const referenceHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>authengine API reference</title>
  <style>body { margin: 0; }</style>
</head>
<body>
  <redoc spec-url="/docs/openapi"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
