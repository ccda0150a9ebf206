// Package reply renders handler results into user-facing pt-BR text. Pure
// string assembly: no state, no I/O. Currency is always "R$" with two decimal
// digits, distances always whole kilometers.
package reply

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/driverscash/driverscash-backend/internal/dto"
	"github.com/driverscash/driverscash-backend/internal/models"
	"github.com/driverscash/driverscash-backend/internal/numfmt"
)

const helpText = `📋 Comandos do Driverscash:
• GASTO <categoria> <valor> — registrar despesa
• GANHO <categoria> <valor> — registrar ganho
• RENDA EXTRA <categoria> <valor> — registrar renda extra
• FATURAMENTO <valor> — faturamento do dia
• ABASTECI <litros> <preço/litro> <gasolina|etanol> <km>
• KM <valor> — atualizar quilometragem
• CALCULAR CONSUMO <km inicial> <km final> <litros>
• CALCULAR CUSTO <km> <consumo médio> <preço/litro>
• LEMBRETE <tipo> KM <alvo> — criar lembrete de manutenção
• LEMBRETE <tipo> CONCLUIDO — concluir lembrete
• LEMBRETES — listar lembretes ativos
• RELATORIO SEMANAL / RELATORIO MENSAL / RELATORIO / RELATORIO KM`

func Welcome() string {
	return "✅ Bem-vindo ao Driverscash!\n\n" + helpText
}

func Help() string { return helpText }

func Unknown() string {
	return "⚠️ Comando não reconhecido.\n\n" + helpText
}

func StoreFailure() string {
	return "❌ Ocorreu um erro interno. Por favor, tente novamente mais tarde."
}

func InvalidAmount() string {
	return "❌ Valor inválido. Use um número maior que zero, ex: 50.00 ou 50,00."
}

func InvalidOdometer() string {
	return "❌ Quilometragem inválida. Use um número maior que zero, ex: 55.000."
}

func CouldNotHearAudio() string {
	return "⚠️ Não consegui entender o áudio. Pode digitar o comando?\n\n" + helpText
}

func ExpenseSaved(category string, value decimal.Decimal) string {
	return fmt.Sprintf("💰 Gasto de %s em '%s' registrado com sucesso!", numfmt.Currency(value), category)
}

func IncomeSaved(category string, value decimal.Decimal) string {
	return fmt.Sprintf("💵 Ganho de %s em '%s' registrado com sucesso!", numfmt.Currency(value), category)
}

func DailyRevenueSaved(value decimal.Decimal) string {
	return fmt.Sprintf("📈 Faturamento de %s registrado com sucesso!", numfmt.Currency(value))
}

func FuelingSaved(total, liters decimal.Decimal, fuelType string) string {
	return fmt.Sprintf("⛽ Abastecimento registrado: %s litros de %s por %s.",
		numfmt.Fixed2(liters), strings.ToLower(fuelType), numfmt.Currency(total))
}

func OdometerSaved(km decimal.Decimal) string {
	return fmt.Sprintf("🚗 Quilometragem atualizada para %s km.", numfmt.KM(km))
}

func ApproachingAlert(maintenanceType string, remaining decimal.Decimal) string {
	return fmt.Sprintf("⚠️ Faltam %s km para: %s.", numfmt.KM(remaining), maintenanceType)
}

func OverdueAlert(maintenanceType string) string {
	return fmt.Sprintf("🔧 Manutenção vencida: %s!", maintenanceType)
}

// AlertCheckFailed is appended after a successful odometer update when the
// reminder check itself failed; the update is never silently hidden.
func AlertCheckFailed() string {
	return "⚠️ Não foi possível verificar seus lembretes agora."
}

func Consumption(kmPerLiter decimal.Decimal) string {
	return fmt.Sprintf("⛽ Consumo médio: %s km/l.", numfmt.Fixed2(kmPerLiter))
}

func FuelCost(total decimal.Decimal) string {
	return fmt.Sprintf("💰 Custo estimado de combustível: %s.", numfmt.Currency(total))
}

func ReminderSet(maintenanceType string, targetKM decimal.Decimal) string {
	return fmt.Sprintf("🔔 Lembrete de %s criado para %s km.", maintenanceType, numfmt.KM(targetKM))
}

func ReminderCompleted(maintenanceType string) string {
	return fmt.Sprintf("✅ Lembrete de %s concluído!", maintenanceType)
}

func ReminderNotFound(maintenanceType string) string {
	return fmt.Sprintf("⚠️ Nenhum lembrete ativo de %s encontrado.", maintenanceType)
}

// Reminders lists active reminders, annotated against the latest odometer
// reading when one exists.
func Reminders(reminders []models.Reminder, currentKM *decimal.Decimal) string {
	if len(reminders) == 0 {
		return "Você não possui lembretes ativos. Crie um com: LEMBRETE <tipo> KM <alvo>"
	}
	var b strings.Builder
	b.WriteString("🔔 Seus lembretes ativos:\n")
	for _, r := range reminders {
		target, err := decimal.NewFromString(r.TargetKM)
		if err != nil {
			fmt.Fprintf(&b, "• %s — alvo inválido\n", r.MaintenanceType)
			continue
		}
		fmt.Fprintf(&b, "• %s — %s km", r.MaintenanceType, numfmt.KM(target))
		if currentKM != nil {
			if currentKM.GreaterThanOrEqual(target) {
				b.WriteString(" (vencido)")
			} else {
				fmt.Fprintf(&b, " (faltam %s km)", numfmt.KM(target.Sub(*currentKM)))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func periodTitle(period dto.Period) string {
	if period == dto.PeriodWeek {
		return "semanal"
	}
	return "mensal"
}

// FinancialReport renders the week/month rollup.
func FinancialReport(report dto.FinancialReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Relatório %s (%s a %s):\n", periodTitle(report.Period),
		displayDate(report.From), displayDate(report.To))
	fmt.Fprintf(&b, "• Ganhos: %s\n", numfmt.Currency(report.TotalIncome))
	fmt.Fprintf(&b, "• Gastos: %s\n", numfmt.Currency(report.TotalExpense))
	fmt.Fprintf(&b, "• Lucro: %s\n", numfmt.Currency(report.Profit))
	if len(report.Categories) > 0 {
		b.WriteString("\nGastos por categoria:\n")
		for _, c := range report.Categories {
			fmt.Fprintf(&b, "• %s: %s\n", c.Category, numfmt.Currency(c.Total))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Statement renders the full newest-first listing with the net total.
func Statement(statement dto.Statement) string {
	if len(statement.Records) == 0 {
		return "Você ainda não possui registros. Comece com: GASTO <categoria> <valor>"
	}
	var b strings.Builder
	b.WriteString("📊 Seus registros:\n")
	for _, r := range statement.Records {
		value, err := decimal.NewFromString(r.Value)
		if err != nil {
			continue
		}
		switch r.Type {
		case models.RecordIncome:
			fmt.Fprintf(&b, "➕ %s — %s (%s)\n", numfmt.Currency(value), r.Category, displayDate(r.Date))
		case models.RecordExpense:
			fmt.Fprintf(&b, "➖ %s — %s (%s)\n", numfmt.Currency(value), r.Category, displayDate(r.Date))
		case models.RecordOdometer:
			fmt.Fprintf(&b, "🚗 %s km (%s)\n", numfmt.KM(value), displayDate(r.Date))
		}
	}
	fmt.Fprintf(&b, "\nSaldo: %s", numfmt.Currency(statement.Net))
	return b.String()
}

// OdometerHistory renders the odometer report.
func OdometerHistory(records []models.Record) string {
	if len(records) == 0 {
		return "Nenhuma quilometragem registrada ainda. Envie: KM <valor>"
	}
	var b strings.Builder
	b.WriteString("🚗 Histórico de quilometragem:\n")
	for _, r := range records {
		value, err := decimal.NewFromString(r.Value)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "• %s km em %s\n", numfmt.KM(value), displayDate(r.Date))
	}
	return strings.TrimRight(b.String(), "\n")
}

// displayDate converts a stored date to dd/mm/yyyy; malformed values are
// shown as stored.
func displayDate(stored string) string {
	date, err := time.Parse(models.DateLayout, stored)
	if err != nil {
		return stored
	}
	return date.Format("02/01/2006")
}
