package api

import (
	"bytes"
	"log/slog"
	"net/http"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

var textFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// handleMetrics sets the gauge and writes the whole registry in the text
// exposition format. If encoding fails the body is left empty.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	s.ccu.Set(s.cfg.CCU)

	mfs, err := s.gatherer.Gather()
	if err != nil {
		// Gather still returns whatever it could collect.
		s.log.Warn("metrics gather", slog.String("error", err.Error()))
	}
	body, err := encodeText(mfs)
	if err != nil {
		s.log.Warn("metrics encode", slog.String("error", err.Error()))
		body = nil
	}
	w.Header().Set("Content-Type", string(textFormat))
	_, _ = w.Write(body)
}

func encodeText(mfs []*dto.MetricFamily) ([]byte, error) {
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, textFormat)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
