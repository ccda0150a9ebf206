package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/command"
	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/models"
	"github.com/driverscash/driverscash-backend/internal/numfmt"
	"github.com/driverscash/driverscash-backend/internal/reply"
	"github.com/driverscash/driverscash-backend/pkg/logger"
)

const defaultPlan = "essencial"

type botUserStore interface {
	GetByWhatsApp(ctx context.Context, number string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

type botRecordStore interface {
	Insert(ctx context.Context, r *models.Record) error
	List(ctx context.Context, uid string, q dto.RecordQuery) ([]models.Record, error)
	LatestOdometer(ctx context.Context, uid string) (*models.Record, error)
}

type botReminderStore interface {
	Insert(ctx context.Context, r *models.Reminder) error
	ListActive(ctx context.Context, uid string) ([]models.Reminder, error)
	SetStatus(ctx context.Context, uid, maintenanceType string, from, to models.ReminderStatus) (int, error)
}

type botReportService interface {
	Financial(ctx context.Context, uid string, period dto.Period, today time.Time) (dto.FinancialReport, error)
	Statement(ctx context.Context, uid string) (dto.Statement, error)
}

type botAlertEvaluator interface {
	Evaluate(currentKM decimal.Decimal, reminders []models.Reminder) []Alert
}

type botService struct {
	users     botUserStore
	records   botRecordStore
	reminders botReminderStore
	reports   botReportService
	alerts    botAlertEvaluator
	now       func() time.Time
}

func NewBotService(users botUserStore, records botRecordStore, reminders botReminderStore, reports botReportService, alerts botAlertEvaluator) *botService {
	return &botService{
		users:     users,
		records:   records,
		reminders: reminders,
		reports:   reports,
		alerts:    alerts,
		now:       time.Now,
	}
}

// HandleMessage turns one inbound chat message into exactly one reply body.
// It never returns an error: every failure path maps to a user-facing reply,
// with the cause logged alongside the user identifier and raw input.
func (s *botService) HandleMessage(ctx context.Context, whatsappNumber, text string) string {
	log := logger.FromContext(ctx).With("whatsapp", whatsappNumber)
	ctx = logger.ToContext(ctx, log)

	user, created, err := s.resolveUser(ctx, whatsappNumber)
	if err != nil {
		log.Error("failed to resolve user", "error", err, "input", text)
		return reply.StoreFailure()
	}

	cmd := command.Parse(text)
	switch cmd.Kind {
	case command.KindGreeting:
		if created {
			return reply.Welcome()
		}
		return "Você já está cadastrado no Driverscash!\n\n" + reply.Help()
	case command.KindHelp:
		return reply.Help()
	case command.KindExpense:
		return s.saveEntry(ctx, user, models.RecordExpense, cmd.Category, cmd.Amount)
	case command.KindIncome:
		return s.saveEntry(ctx, user, models.RecordIncome, cmd.Category, cmd.Amount)
	case command.KindExtraIncome:
		return s.saveEntry(ctx, user, models.RecordIncome, "Extra: "+cmd.Category, cmd.Amount)
	case command.KindDailyRevenue:
		return s.saveDailyRevenue(ctx, user, cmd.Amount)
	case command.KindFueling:
		return s.saveFueling(ctx, user, cmd)
	case command.KindOdometer:
		return s.saveOdometer(ctx, user, cmd.Amount)
	case command.KindCalcConsumption:
		return s.calcConsumption(cmd)
	case command.KindCalcFuelCost:
		return s.calcFuelCost(cmd)
	case command.KindOdometerReport:
		return s.odometerReport(ctx, user)
	case command.KindSetReminder:
		return s.setReminder(ctx, user, cmd)
	case command.KindCompleteReminder:
		return s.completeReminder(ctx, user, cmd.Category)
	case command.KindListReminders:
		return s.listReminders(ctx, user)
	case command.KindWeeklyReport:
		return s.financialReport(ctx, user, dto.PeriodWeek)
	case command.KindMonthlyReport:
		return s.financialReport(ctx, user, dto.PeriodMonth)
	case command.KindFullReport:
		return s.statement(ctx, user)
	default:
		log.Info("unrecognized command", "input", text)
		return reply.Unknown()
	}
}

// resolveUser finds or lazily creates the driver for a WhatsApp number.
func (s *botService) resolveUser(ctx context.Context, number string) (*models.User, bool, error) {
	user, err := s.users.GetByWhatsApp(ctx, number)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	user = &models.User{
		ID:       uuid.NewString(),
		WhatsApp: number,
		Plan:     defaultPlan,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	logger.FromContext(ctx).Info("new driver registered", "user_id", user.ID)
	return user, true, nil
}

func (s *botService) newRecord(user *models.User, recordType models.RecordType, category string, value decimal.Decimal) *models.Record {
	return &models.Record{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Origin:   models.OriginChat,
		Date:     s.now().Format(models.DateLayout),
		Type:     recordType,
		Category: category,
		Value:    value.String(),
	}
}

func (s *botService) saveEntry(ctx context.Context, user *models.User, recordType models.RecordType, category, amount string) string {
	value, err := numfmt.ParsePositiveCurrency(amount)
	if err != nil {
		return reply.InvalidAmount()
	}

	record := s.newRecord(user, recordType, category, value)
	if err := s.records.Insert(ctx, record); err != nil {
		logger.FromContext(ctx).Error("failed to insert record", "error", err, "type", recordType)
		return reply.StoreFailure()
	}

	if recordType == models.RecordIncome {
		return reply.IncomeSaved(category, value)
	}
	return reply.ExpenseSaved(category, value)
}

func (s *botService) saveDailyRevenue(ctx context.Context, user *models.User, amount string) string {
	value, err := numfmt.ParsePositiveCurrency(amount)
	if err != nil {
		return reply.InvalidAmount()
	}

	record := s.newRecord(user, models.RecordIncome, "Faturamento", value)
	if err := s.records.Insert(ctx, record); err != nil {
		logger.FromContext(ctx).Error("failed to insert revenue record", "error", err)
		return reply.StoreFailure()
	}
	return reply.DailyRevenueSaved(value)
}

func (s *botService) saveFueling(ctx context.Context, user *models.User, cmd command.Command) string {
	liters, err := numfmt.ParsePositiveCurrency(cmd.Liters)
	if err != nil {
		return reply.InvalidAmount()
	}
	price, err := numfmt.ParsePositiveCurrency(cmd.PricePerLiter)
	if err != nil {
		return reply.InvalidAmount()
	}
	odometer, err := numfmt.ParsePositiveOdometer(cmd.Odometer)
	if err != nil {
		return reply.InvalidOdometer()
	}

	total := liters.Mul(price)
	record := s.newRecord(user, models.RecordExpense, "Combustível", total)
	record.Quantity = liters.String()
	record.Notes = fmt.Sprintf("km atual: %s, preço/litro: %s, tipo: %s",
		numfmt.KM(odometer), numfmt.Fixed2(price), strings.ToLower(cmd.FuelType))

	if err := s.records.Insert(ctx, record); err != nil {
		logger.FromContext(ctx).Error("failed to insert fueling record", "error", err)
		return reply.StoreFailure()
	}
	return reply.FuelingSaved(total, liters, cmd.FuelType)
}

// saveOdometer persists the reading first and only then evaluates reminders:
// an alert-check failure is appended as a note, never rolled back and never
// allowed to hide that the update already succeeded.
func (s *botService) saveOdometer(ctx context.Context, user *models.User, token string) string {
	km, err := numfmt.ParsePositiveOdometer(token)
	if err != nil {
		return reply.InvalidOdometer()
	}

	record := s.newRecord(user, models.RecordOdometer, "KM", km)
	if err := s.records.Insert(ctx, record); err != nil {
		logger.FromContext(ctx).Error("failed to insert odometer record", "error", err)
		return reply.StoreFailure()
	}

	parts := []string{reply.OdometerSaved(km)}
	reminders, err := s.reminders.ListActive(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Error("reminder check failed after odometer update", "error", err)
		parts = append(parts, reply.AlertCheckFailed())
		return strings.Join(parts, "\n")
	}
	for _, alert := range s.alerts.Evaluate(km, reminders) {
		if alert.Overdue {
			parts = append(parts, reply.OverdueAlert(alert.MaintenanceType))
		} else {
			parts = append(parts, reply.ApproachingAlert(alert.MaintenanceType, alert.Remaining))
		}
	}
	return strings.Join(parts, "\n")
}

func (s *botService) calcConsumption(cmd command.Command) string {
	start, err := numfmt.ParsePositiveOdometer(cmd.KMStart)
	if err != nil {
		return reply.InvalidOdometer()
	}
	end, err := numfmt.ParsePositiveOdometer(cmd.KMEnd)
	if err != nil {
		return reply.InvalidOdometer()
	}
	liters, err := numfmt.ParsePositiveCurrency(cmd.Liters)
	if err != nil {
		return reply.InvalidAmount()
	}
	if !end.GreaterThan(start) {
		return reply.InvalidOdometer()
	}
	return reply.Consumption(end.Sub(start).Div(liters))
}

func (s *botService) calcFuelCost(cmd command.Command) string {
	km, err := numfmt.ParsePositiveOdometer(cmd.KMDriven)
	if err != nil {
		return reply.InvalidOdometer()
	}
	consumption, err := numfmt.ParsePositiveCurrency(cmd.AvgConsumption)
	if err != nil {
		return reply.InvalidAmount()
	}
	price, err := numfmt.ParsePositiveCurrency(cmd.PricePerLiter)
	if err != nil {
		return reply.InvalidAmount()
	}
	return reply.FuelCost(km.Div(consumption).Mul(price))
}

func (s *botService) odometerReport(ctx context.Context, user *models.User) string {
	records, err := s.records.List(ctx, user.ID, dto.RecordQuery{Type: models.RecordOdometer, Limit: 10})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list odometer records", "error", err)
		return reply.StoreFailure()
	}
	return reply.OdometerHistory(records)
}

func (s *botService) setReminder(ctx context.Context, user *models.User, cmd command.Command) string {
	target, err := numfmt.ParsePositiveOdometer(cmd.Amount)
	if err != nil {
		return reply.InvalidOdometer()
	}

	reminder := &models.Reminder{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		MaintenanceType: cmd.Category,
		TargetKM:        target.String(),
		Status:          models.ReminderActive,
		CreatedDate:     s.now().Format(models.DateLayout),
	}
	if err := s.reminders.Insert(ctx, reminder); err != nil {
		logger.FromContext(ctx).Error("failed to insert reminder", "error", err)
		return reply.StoreFailure()
	}
	return reply.ReminderSet(cmd.Category, target)
}

func (s *botService) completeReminder(ctx context.Context, user *models.User, maintenanceType string) string {
	affected, err := s.reminders.SetStatus(ctx, user.ID, maintenanceType, models.ReminderActive, models.ReminderCompleted)
	if err != nil {
		logger.FromContext(ctx).Error("failed to complete reminder", "error", err, "maintenance_type", maintenanceType)
		return reply.StoreFailure()
	}
	if affected == 0 {
		return reply.ReminderNotFound(maintenanceType)
	}
	return reply.ReminderCompleted(maintenanceType)
}

func (s *botService) listReminders(ctx context.Context, user *models.User) string {
	reminders, err := s.reminders.ListActive(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list reminders", "error", err)
		return reply.StoreFailure()
	}

	var currentKM *decimal.Decimal
	latest, err := s.records.LatestOdometer(ctx, user.ID)
	if err != nil {
		// Listing still works without the annotation.
		logger.FromContext(ctx).Warn("failed to fetch latest odometer", "error", err)
	} else if latest != nil {
		if km, err := decimal.NewFromString(latest.Value); err == nil {
			currentKM = &km
		}
	}
	return reply.Reminders(reminders, currentKM)
}

func (s *botService) financialReport(ctx context.Context, user *models.User, period dto.Period) string {
	report, err := s.reports.Financial(ctx, user.ID, period, s.now())
	if err != nil {
		logger.FromContext(ctx).Error("failed to build financial report", "error", err, "period", period)
		return reply.StoreFailure()
	}
	return reply.FinancialReport(report)
}

func (s *botService) statement(ctx context.Context, user *models.User) string {
	statement, err := s.reports.Statement(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to build statement", "error", err)
		return reply.StoreFailure()
	}
	return reply.Statement(statement)
}
