package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Set("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, v any) {
	if _, err := SendJSON(w, v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.WithError(err).WithField("response", v).Error("unable to send response")
	}
}

// sendError writes the status and a JSON error body. The content type must
// be set before the status line goes out.
func sendError(w http.ResponseWriter, log logrus.FieldLogger, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, writeErr := w.Write(mustMarshal(wrapError(err))); writeErr != nil {
		log.WithError(writeErr).Warn("unable to send error response")
	}
}

func internalError(w http.ResponseWriter, log logrus.FieldLogger, msg string, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	log.WithError(err).Error(msg)
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func mustMarshal(v map[string]string) []byte {
	b, _ := json.Marshal(v)
	return b
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
