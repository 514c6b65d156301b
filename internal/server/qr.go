package server

import (
	"fmt"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// handleJoinQR renders a QR code of the join page so players can hop in
// with their phones. The host is taken from the request, so the code
// works for whatever address the moderator's browser reached us on.
func (s *Server) handleJoinQR(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	joinURL := fmt.Sprintf("%s://%s/", scheme, r.Host)

	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("failed to encode join QR code", zap.Error(err))
		http.Error(w, "failed to render QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		s.logger.Debug("failed to write QR response", zap.Error(err))
	}
}
