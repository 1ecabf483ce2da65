package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/cafe-employee-api/internal/domain"
	"github.com/cafe-employee-api/internal/dto"
	"github.com/cafe-employee-api/internal/export"
	"github.com/cafe-employee-api/internal/service"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  responder{logger: logger},
		empService: empService,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context(), r.URL.Query().Get("cafe"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	items := make([]dto.EmployeeListItem, len(employees))
	for i := range employees {
		items[i] = toEmployeeListItem(&employees[i])
	}

	h.respondData(w, http.StatusOK, items)
}

// Export отдаёт тот же список, что и List, в виде книги Excel
func (h *EmployeeHandler) Export(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context(), r.URL.Query().Get("cafe"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteEmployees(&buf, employees); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write export", slog.Any("error", err))
	}
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	emp, err := h.empService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			h.respondError(w, http.StatusNotFound, "Employee not found")
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	h.respondData(w, http.StatusOK, dto.EmployeeDetail{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Gender:     string(emp.Gender),
		StartDate:  emp.StartDate.Format(domain.DateLayout),
		Cafe:       cafeRef(emp, true),
	})
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.EmployeeInput
	if err := decodeEmployeeInput(r, &input); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.empService.Create(r.Context(), &input)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondData(w, http.StatusCreated, dto.IDResponse{ID: emp.ID})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.EmployeeInput
	if err := decodeEmployeeInput(r, &input); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := h.empService.Update(r.Context(), id, &input); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondData(w, http.StatusOK, dto.IDResponse{ID: id})
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.empService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var employeeFields = []string{"name", "email", "phone", "gender", "startDate", "cafeId"}

// decodeEmployeeInput принимает JSON, а также url-encoded форму. Ошибки отдельных
// полей не прерывают разбор и проверяются вместе с остальными правилами.
func decodeEmployeeInput(r *http.Request, input *dto.EmployeeInput) error {
	var values, problems map[string]string

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		values, problems = formFields(r.PostForm, employeeFields...)
	} else {
		var err error
		values, problems, err = jsonFields(r.Body, employeeFields...)
		if err != nil {
			return err
		}
	}

	*input = dto.EmployeeInput{
		Name:         values["name"],
		Email:        values["email"],
		Phone:        values["phone"],
		Gender:       values["gender"],
		StartDate:    values["startDate"],
		CafeID:       values["cafeId"],
		DecodeErrors: problems,
	}
	return nil
}

func toEmployeeListItem(emp *domain.EmployeeSummary) dto.EmployeeListItem {
	return dto.EmployeeListItem{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Gender:     string(emp.Gender),
		StartDate:  emp.StartDate.Format(domain.DateLayout),
		Cafe:       cafeRef(&emp.Employee, false),
		DaysWorked: emp.DaysWorked,
	}
}

// cafeRef возвращает nil, если кафе по ссылке сотрудника не существует
func cafeRef(emp *domain.Employee, withID bool) *dto.CafeRef {
	if emp.Cafe == nil || emp.Cafe.ID == "" {
		return nil
	}
	ref := &dto.CafeRef{Name: emp.Cafe.Name}
	if withID {
		ref.ID = emp.Cafe.ID
	}
	return ref
}
