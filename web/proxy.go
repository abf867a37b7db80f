/* proxy.go
 * Contains the /proxy/logo endpoint. Team logos live on liquipedia.net,
 * which doesn't send CORS headers, so the UI fetches them through here.
 * Only liquipedia hosts are proxied.
 */

package web

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// proxyMaxBytes caps proxied responses; logos are small images.
const proxyMaxBytes = 2 << 20

var proxyClient = &http.Client{Timeout: 15 * time.Second}

// LogoProxyHandler serves GET /proxy/logo?url= by streaming the upstream
// image through with its content type
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes the proxied image, or the mapped error status
func (s *Server) LogoProxyHandler(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	raw := r.URL.Query().Get("url")
	if raw == "" {
		http.Error(w, "url parameter is required", http.StatusBadRequest)
		return
	}
	target, err := url.Parse(raw)
	if err != nil || !allowedProxyHost(target) {
		http.Error(w, "url is not an allowed host", http.StatusBadRequest)
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		http.Error(w, "invalid url", http.StatusBadRequest)
		return
	}

	resp, err := proxyClient.Do(req)
	if err != nil {
		log.Println("logo proxy fetch failed:", err)
		http.Error(w, "upstream fetch failed", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.Error(w, "upstream fetch failed", http.StatusBadGateway)
		return
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, io.LimitReader(resp.Body, proxyMaxBytes)); err != nil {
		log.Println("logo proxy copy failed:", err)
	}
}

// allowedProxyHost permits only https liquipedia hosts
func allowedProxyHost(u *url.URL) bool {
	if u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "liquipedia.net" || strings.HasSuffix(host, ".liquipedia.net")
}
