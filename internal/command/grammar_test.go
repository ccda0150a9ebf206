package command

import "testing"

func TestParseEntries(t *testing.T) {
	cases := []struct {
		text string
		want Command
	}{
		{"oi", Command{Kind: KindGreeting}},
		{"OLÁ", Command{Kind: KindGreeting}},
		{"iniciar", Command{Kind: KindGreeting}},
		{"Ajuda", Command{Kind: KindHelp}},

		// Both amount positions are part of the protocol.
		{"GASTO 50.00 POSTO", Command{Kind: KindExpense, Category: "Posto", Amount: "50.00"}},
		{"gasto posto 50,00", Command{Kind: KindExpense, Category: "Posto", Amount: "50,00"}},
		{"gasto de manutencao 150", Command{Kind: KindExpense, Category: "Manutencao", Amount: "150"}},
		{"ganho corrida aeroporto 89,90", Command{Kind: KindIncome, Category: "Corrida Aeroporto", Amount: "89,90"}},
		{"renda extra entrega 35", Command{Kind: KindExtraIncome, Category: "Entrega", Amount: "35"}},
		{"faturamento 250,00", Command{Kind: KindDailyRevenue, Amount: "250,00"}},

		{"abasteci 40 5,89 gasolina 55.000", Command{
			Kind: KindFueling, Liters: "40", PricePerLiter: "5,89",
			FuelType: "gasolina", Odometer: "55.000",
		}},
		{"km 12345", Command{Kind: KindOdometer, Amount: "12345"}},
		{"km 55.000", Command{Kind: KindOdometer, Amount: "55.000"}},

		{"calcular consumo 55.000 55.400 40", Command{
			Kind: KindCalcConsumption, KMStart: "55.000", KMEnd: "55.400", Liters: "40",
		}},
		{"calcular custo 300 11,5 5,89", Command{
			Kind: KindCalcFuelCost, KMDriven: "300", AvgConsumption: "11,5", PricePerLiter: "5,89",
		}},

		{"relatorio km", Command{Kind: KindOdometerReport}},
		{"relatório de km", Command{Kind: KindOdometerReport}},

		{"lembrete troca de oleo km 10.000", Command{Kind: KindSetReminder, Category: "Troca De Oleo", Amount: "10.000"}},
		{"lembrete de oleo concluido", Command{Kind: KindCompleteReminder, Category: "Oleo"}},
		{"lembrete concluido oleo", Command{Kind: KindCompleteReminder, Category: "Oleo"}},
		{"oleo lembrete concluido", Command{Kind: KindCompleteReminder, Category: "Oleo"}},
		{"concluir lembrete pneus", Command{Kind: KindCompleteReminder, Category: "Pneus"}},
		{"lembretes", Command{Kind: KindListReminders}},
		{"meus lembretes", Command{Kind: KindListReminders}},

		{"relatorio semanal", Command{Kind: KindWeeklyReport}},
		{"relatório da semana", Command{Kind: KindWeeklyReport}},
		{"relatorio mensal", Command{Kind: KindMonthlyReport}},
		{"relatório do mês", Command{Kind: KindMonthlyReport}},
		{"relatorio", Command{Kind: KindFullReport}},

		{"bom dia, tudo bem?", Command{Kind: KindUnknown}},
		{"gasto 50", Command{Kind: KindUnknown}},
		{"", Command{Kind: KindUnknown}},
	}

	for _, c := range cases {
		got := Parse(c.text)
		if got != c.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", c.text, got, c.want)
		}
	}
}

// A set-reminder phrase must never be read as a completion, and vice versa,
// regardless of the shared "lembrete" keyword.
func TestParseReminderPriority(t *testing.T) {
	set := Parse("lembrete oleo km 10000")
	if set.Kind != KindSetReminder || set.Category != "Oleo" || set.Amount != "10000" {
		t.Fatalf("set-reminder parse: %+v", set)
	}

	for _, text := range []string{"lembrete concluido oleo", "oleo lembrete concluido"} {
		got := Parse(text)
		if got.Kind != KindCompleteReminder || got.Category != "Oleo" {
			t.Fatalf("Parse(%q) = %+v, want completion of Oleo", text, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  GASTO   50,00   Posto  "); got != "gasto 50,00 posto" {
		t.Fatalf("Normalize = %q", got)
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("  troca de oleo "); got != "Troca De Oleo" {
		t.Fatalf("Capitalize = %q", got)
	}
}
