package httpadapter

import (
	"errors"
	"mime"
	"net/http"
	"net/url"

	"selmore/internal/core/domain"
	"selmore/internal/core/port"
	"selmore/internal/validate"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling file parts to disk.
const multipartMemory = 8 << 20

// billboardJSON is the JSON form of a billboard create or update.
type billboardJSON struct {
	Title       flexString `json:"title"`
	Description flexString `json:"description"`
	Location    flexString `json:"location"`
	City        flexString `json:"city"`
	Type        flexString `json:"type"`
	Size        flexString `json:"size"`
	Price       flexString `json:"price"`
	PriceType   flexString `json:"priceType"`
	WeekPrice   flexString `json:"weekPrice"`
	MonthPrice  flexString `json:"monthPrice"`
	BookingType flexString `json:"bookingType"`
}

func (b billboardJSON) form() port.BillboardForm {
	return port.BillboardForm{
		Title:       b.Title.ptr(),
		Description: b.Description.ptr(),
		Location:    b.Location.ptr(),
		City:        b.City.ptr(),
		Type:        b.Type.ptr(),
		Size:        b.Size.ptr(),
		Price:       b.Price.ptr(),
		PriceType:   b.PriceType.ptr(),
		WeekPrice:   b.WeekPrice.ptr(),
		MonthPrice:  b.MonthPrice.ptr(),
		BookingType: b.BookingType.ptr(),
	}
}

func formValue(v url.Values, key string) *string {
	vals, ok := v[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	s := vals[0]
	return &s
}

func billboardFormValues(v url.Values) port.BillboardForm {
	return port.BillboardForm{
		Title:       formValue(v, "title"),
		Description: formValue(v, "description"),
		Location:    formValue(v, "location"),
		City:        formValue(v, "city"),
		Type:        formValue(v, "type"),
		Size:        formValue(v, "size"),
		Price:       formValue(v, "price"),
		PriceType:   formValue(v, "priceType"),
		WeekPrice:   formValue(v, "weekPrice"),
		MonthPrice:  formValue(v, "monthPrice"),
		BookingType: formValue(v, "bookingType"),
	}
}

// readBillboardForm accepts multipart/form-data (with an optional "image"
// file), urlencoded forms and JSON. The returned cleanup must be called
// once the upload has been consumed.
func (h *Handler) readBillboardForm(w http.ResponseWriter, r *http.Request) (port.BillboardForm, *port.Upload, func(), error) {
	noop := func() {}
	if h.opts.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return port.BillboardForm{}, nil, noop, err
			}
			return port.BillboardForm{}, nil, noop, domain.Validation("Invalid multipart form")
		}
		cleanup := func() { _ = r.MultipartForm.RemoveAll() }
		form := billboardFormValues(r.MultipartForm.Value)

		file, header, err := r.FormFile("image")
		if errors.Is(err, http.ErrMissingFile) {
			return form, nil, cleanup, nil
		}
		if err != nil {
			cleanup()
			return port.BillboardForm{}, nil, noop, domain.Validation("Invalid image upload")
		}
		return form, &port.Upload{Filename: header.Filename, Content: file}, func() {
			_ = file.Close()
			cleanup()
		}, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return port.BillboardForm{}, nil, noop, domain.Validation("Invalid form body")
		}
		return billboardFormValues(r.PostForm), nil, noop, nil
	}

	var body billboardJSON
	if err := h.decodeJSON(w, r, &body); err != nil {
		return port.BillboardForm{}, nil, noop, err
	}
	return body.form(), nil, noop, nil
}

func billboardFilter(q url.Values) (domain.BillboardFilter, error) {
	var f domain.BillboardFilter
	if v := q.Get("city"); v != "" {
		f.City = &v
	}
	if v := q.Get("type"); v != "" {
		f.Type = &v
	}
	if v := q.Get("bookingType"); v != "" {
		f.BookingType = &v
	}
	if v := q.Get("minPrice"); v != "" {
		n, err := validate.Number(v, "minPrice")
		if err != nil {
			return f, err
		}
		f.MinPrice = &n
	}
	if v := q.Get("maxPrice"); v != "" {
		n, err := validate.Number(v, "maxPrice")
		if err != nil {
			return f, err
		}
		f.MaxPrice = &n
	}
	return f, nil
}

func (h *Handler) handleListBillboards(w http.ResponseWriter, r *http.Request) {
	f, err := billboardFilter(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Billboards.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Billboard{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetBillboard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.svc.Billboards.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleCreateBillboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	form, image, cleanup, err := h.readBillboardForm(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer cleanup()

	b, err := h.svc.Billboards.Create(r.Context(), caller, form, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleUpdateBillboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	form, image, cleanup, err := h.readBillboardForm(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer cleanup()

	b, err := h.svc.Billboards.Update(r.Context(), caller, id, form, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleDeleteBillboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Billboards.Delete(r.Context(), caller, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
