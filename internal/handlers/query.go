package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/middleware"
	"github.com/driverscash/driverscash-backend/internal/models"
	"github.com/driverscash/driverscash-backend/internal/response"
)

type ReportService interface {
	Financial(ctx context.Context, uid string, period dto.Period, today time.Time) (dto.FinancialReport, error)
}

type RecordLister interface {
	List(ctx context.Context, uid string, q dto.RecordQuery) ([]models.Record, error)
}

type ReminderLister interface {
	ListActive(ctx context.Context, uid string) ([]models.Reminder, error)
}

// queryHandlers serves the authenticated read-only JSON API. Writes only
// happen through the chat channel.
type queryHandlers struct {
	ResponseHandler response.ResponseHandler
	Reports         ReportService
	Records         RecordLister
	Reminders       ReminderLister
	now             func() time.Time
}

func NewQueryHandlers(deps *Deps) *queryHandlers {
	return &queryHandlers{
		ResponseHandler: deps.ResponseHandler,
		Reports:         deps.ReportSvc,
		Records:         deps.Records,
		Reminders:       deps.Reminders,
		now:             time.Now,
	}
}

func (h *queryHandlers) QueryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/records", h.ListRecords)
	r.Get("/reports/weekly", h.WeeklyReport)
	r.Get("/reports/monthly", h.MonthlyReport)
	r.Get("/reminders", h.ListReminders)
	return r
}

func (h *queryHandlers) ListRecords(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	q := dto.RecordQuery{}
	if recordType := r.URL.Query().Get("type"); recordType != "" {
		q.Type = models.RecordType(recordType)
	}

	records, err := h.Records.List(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, records)
}

func (h *queryHandlers) WeeklyReport(w http.ResponseWriter, r *http.Request) {
	h.financialReport(w, r, dto.PeriodWeek)
}

func (h *queryHandlers) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	h.financialReport(w, r, dto.PeriodMonth)
}

func (h *queryHandlers) financialReport(w http.ResponseWriter, r *http.Request, period dto.Period) {
	uid := middleware.UID(r.Context())
	report, err := h.Reports.Financial(r.Context(), uid, period, h.now())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}

func (h *queryHandlers) ListReminders(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	reminders, err := h.Reminders.ListActive(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, reminders)
}
