package swaggerkit

import (
	"net/http"

	phttp "chargemap/internal/platform/net/http"

	docs "chargemap/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount serves the patched document and the UI under DocsPath, nothing when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	docURL := DocsPath + "/doc.json"
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(docURL, serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL(docURL),
	))
}
