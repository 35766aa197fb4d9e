package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"selmore/internal/core/domain"
	"selmore/internal/validate"
)

// decodeJSON reads the request body into v. An empty body leaves v
// untouched so that missing fields are reported by the usecase.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if h.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return domain.Validation("Invalid JSON body")
}

// pathID parses the int64 URL parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validation("Invalid " + name)
	}
	return id, nil
}

// flexString accepts a JSON string or number. Form-style clients send
// numbers as strings and JSON clients as numbers; both end up here.
type flexString struct {
	value string
	set   bool
}

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = flexString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString{value: s, set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString{value: n.String(), set: true}
	return nil
}

// ptr returns nil when the field was absent.
func (f flexString) ptr() *string {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

func (f flexString) present() bool {
	return f.set && strings.TrimSpace(f.value) != ""
}

// float parses an optional number.
func (f flexString) float(field string) (*float64, error) {
	if !f.present() {
		return nil, nil
	}
	n, err := validate.Number(f.value, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// id parses an optional positive integer id.
func (f flexString) id(field string) (*int64, error) {
	if !f.present() {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(f.value), 10, 64)
	if err != nil || n <= 0 {
		return nil, domain.Validation(field + " must be a valid id")
	}
	return &n, nil
}

// date parses an optional RFC 3339 timestamp or a plain YYYY-MM-DD date.
func (f flexString) date(field string) (*time.Time, error) {
	if !f.present() {
		return nil, nil
	}
	s := strings.TrimSpace(f.value)
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.Validation(field + " must be a valid date")
}
