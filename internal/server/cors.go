package server

import "net/http"

// setCORSHeaders applies the permissive cross-origin policy carried by every
// response, success or error. Browsers viewing served files from another
// origin need these, including on preflight OPTIONS requests.
func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Range")
}
