package swaggerkit

import "net/http"

// docReader serves a skeleton spec so the UI loads without a generator step
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"Forumscope API","version":"0.1.0"},"paths":{}}`
}

// serveDocJSON serves the swagger JSON document
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
