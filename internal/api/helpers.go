package api

import (
	"encoding/json/v2"
	"net"
	"net/http"

	"github.com/daygridapp/daygrid-server/internal/http/response"
)

// maxBodyBytes bounds request bodies; grid payloads are small.
const maxBodyBytes = 1 << 20

// decodeJSON reads and decodes a JSON request body into v. On failure it
// writes a 400 response and returns false; the handler should just return.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.UnmarshalRead(r.Body, v); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger)
		return false
	}
	return true
}

// clientIP returns the request's client address without the port.
// RealIP middleware has already folded proxy headers into RemoteAddr, so the
// value may be host:port or a bare IP; bare IPv6 has colons of its own and
// must come back whole.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
