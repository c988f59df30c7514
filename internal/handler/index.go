package handler

import (
	"html/template"
	"net/http"
)

// indexPage is the minimal landing page linking the tools. The real front
// ends (the conversion form, the study page) are served separately; this
// endpoint only has to answer something sensible at the root.
var indexPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ja">
<head><meta charset="utf-8"><title>travelops</title></head>
<body>
<h1>travelops</h1>
<ul>
<li><a href="/convert">travel-package CSV conversion (POST)</a></li>
<li><a href="/api/word">vocabulary study API</a></li>
<li><a href="/healthz">health</a></li>
</ul>
</body>
</html>
`))

// Index handles GET /.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck
	indexPage.Execute(w, nil)
}
