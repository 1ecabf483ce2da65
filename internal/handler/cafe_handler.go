package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cafe-employee-api/internal/domain"
	"github.com/cafe-employee-api/internal/dto"
	"github.com/cafe-employee-api/internal/service"
	"github.com/cafe-employee-api/internal/storage"
	"github.com/go-chi/chi/v5"
)

const (
	maxUploadMemory = 4 << 20
	maxCafeBody     = 10 << 20
)

type CafeHandler struct {
	responder
	cafeService service.CafeService
}

func NewCafeHandler(cafeService service.CafeService, logger *slog.Logger) *CafeHandler {
	return &CafeHandler{
		responder:   responder{logger: logger},
		cafeService: cafeService,
	}
}

func (h *CafeHandler) List(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.cafeService.List(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	items := make([]dto.CafeListItem, len(cafes))
	for i, c := range cafes {
		items[i] = dto.CafeListItem{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Logo:        c.Logo,
			Location:    c.Location,
			Employees:   c.EmployeeCount,
		}
	}

	h.respondData(w, http.StatusOK, items)
}

func (h *CafeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	cafe, err := h.cafeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrCafeNotFound) {
			h.respondError(w, http.StatusNotFound, "Cafe not found")
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	h.respondData(w, http.StatusOK, toCafeResponse(cafe))
}

func (h *CafeHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, closeFile, err := h.decodeInput(w, r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer closeFile()

	cafe, err := h.cafeService.Create(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondData(w, http.StatusCreated, dto.IDResponse{ID: cafe.ID})
}

// Update: несуществующий id даёт 400, а не 404
func (h *CafeHandler) Update(w http.ResponseWriter, r *http.Request) {
	input, closeFile, err := h.decodeInput(w, r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer closeFile()

	id := chi.URLParam(r, "id")
	if _, err := h.cafeService.Update(r.Context(), id, input); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondData(w, http.StatusOK, dto.IDResponse{ID: id})
}

func (h *CafeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.cafeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeInput читает multipart или url-encoded форму. Файл logo необязателен;
// если клиент не прислал его тип, тип определяется по содержимому.
func (h *CafeHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*dto.CafeInput, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCafeBody)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, err
	}

	values, problems := formFields(r.PostForm, "name", "description", "location")
	input := &dto.CafeInput{
		Name:         values["name"],
		Description:  values["description"],
		Location:     values["location"],
		DecodeErrors: problems,
	}

	noop := func() {}
	if r.MultipartForm == nil {
		return input, noop, nil
	}

	file, header, err := r.FormFile("logo")
	if errors.Is(err, http.ErrMissingFile) {
		return input, noop, nil
	}
	if err != nil {
		return nil, nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		detected, err := storage.DetectContentType(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		contentType = detected
	}

	input.Logo = &dto.UploadedFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	}

	return input, func() { file.Close() }, nil
}

func toCafeResponse(cafe *domain.Cafe) dto.CafeResponse {
	resp := dto.CafeResponse{
		ID:          cafe.ID,
		Name:        cafe.Name,
		Description: cafe.Description,
		Logo:        cafe.Logo,
		Location:    cafe.Location,
		Employees:   make([]dto.EmployeeResponse, len(cafe.Employees)),
	}

	for i, emp := range cafe.Employees {
		resp.Employees[i] = dto.EmployeeResponse{
			ID:         emp.ID,
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
			Email:      emp.Email,
			Phone:      emp.Phone,
			Gender:     string(emp.Gender),
			StartDate:  emp.StartDate.Format(domain.DateLayout),
			CafeID:     emp.CafeID,
		}
	}

	return resp
}
