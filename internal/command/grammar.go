package command

import "regexp"

// num is deliberately loose: it accepts any digit/separator run and leaves
// validation to the locale parser, so "55.000,5" and "50,00" both anchor the
// trailing-numeric position without the grammar guessing the convention.
const num = `[0-9][0-9.,]*`

// amountTail matches "<categoria> <valor>" and the older "<valor> <categoria>"
// order. The text capture is non-greedy and must stop before the trailing
// numeric token.
const amountTail = `(?:(` + num + `)\s(.+)|(.+?)\s(` + num + `))`

type matcher struct {
	re      *regexp.Regexp
	extract func(groups []string) Command
}

// grammar is matched in this exact order; earlier entries win. Reordering
// breaks commands whose surface is a substring of another (set-reminder vs
// complete-reminder, "relatorio km" vs "relatorio").
var grammar = []matcher{
	{
		re:      regexp.MustCompile(`^(?:oi|ola|olá|iniciar)$`),
		extract: func([]string) Command { return Command{Kind: KindGreeting} },
	},
	{
		re:      regexp.MustCompile(`^(?:ajuda|comandos)$`),
		extract: func([]string) Command { return Command{Kind: KindHelp} },
	},
	{
		re:      regexp.MustCompile(`^gasto(?: de)? ` + amountTail + `$`),
		extract: func(g []string) Command { return categoryAmount(KindExpense, g) },
	},
	{
		re:      regexp.MustCompile(`^ganho(?: de)? ` + amountTail + `$`),
		extract: func(g []string) Command { return categoryAmount(KindIncome, g) },
	},
	{
		re:      regexp.MustCompile(`^renda extra(?: de)? ` + amountTail + `$`),
		extract: func(g []string) Command { return categoryAmount(KindExtraIncome, g) },
	},
	{
		re: regexp.MustCompile(`^faturamento(?: de)? (` + num + `)$`),
		extract: func(g []string) Command {
			return Command{Kind: KindDailyRevenue, Amount: g[1]}
		},
	},
	{
		re: regexp.MustCompile(`^abastec(?:i|imento) (` + num + `) (` + num + `) (gasolina|etanol) (` + num + `)$`),
		extract: func(g []string) Command {
			return Command{
				Kind:          KindFueling,
				Liters:        g[1],
				PricePerLiter: g[2],
				FuelType:      g[3],
				Odometer:      g[4],
			}
		},
	},
	{
		re: regexp.MustCompile(`^km (` + num + `)$`),
		extract: func(g []string) Command {
			return Command{Kind: KindOdometer, Amount: g[1]}
		},
	},
	{
		re: regexp.MustCompile(`^calcular consumo (` + num + `) (` + num + `) (` + num + `)$`),
		extract: func(g []string) Command {
			return Command{Kind: KindCalcConsumption, KMStart: g[1], KMEnd: g[2], Liters: g[3]}
		},
	},
	{
		re: regexp.MustCompile(`^calcular custo (` + num + `) (` + num + `) (` + num + `)$`),
		extract: func(g []string) Command {
			return Command{Kind: KindCalcFuelCost, KMDriven: g[1], AvgConsumption: g[2], PricePerLiter: g[3]}
		},
	},
	{
		re:      regexp.MustCompile(`^relat[oó]rio(?: de)? km$`),
		extract: func([]string) Command { return Command{Kind: KindOdometerReport} },
	},
	{
		re: regexp.MustCompile(`^lembrete(?: de)? (.+?) km (` + num + `)$`),
		extract: func(g []string) Command {
			return Command{Kind: KindSetReminder, Category: Capitalize(g[1]), Amount: g[2]}
		},
	},
	// Four equivalent phrasings of "reminder <type> completed". All funnel
	// into one extractor; they sit below set-reminder so "lembrete oleo km
	// 10000" can never be read as a completion.
	{
		re:      regexp.MustCompile(`^lembrete(?: de)? (.+?) conclu[ií]do$`),
		extract: completion,
	},
	{
		re:      regexp.MustCompile(`^lembrete conclu[ií]do (.+)$`),
		extract: completion,
	},
	{
		re:      regexp.MustCompile(`^(.+?) lembrete conclu[ií]do$`),
		extract: completion,
	},
	{
		re:      regexp.MustCompile(`^concluir lembrete(?: de)? (.+)$`),
		extract: completion,
	},
	{
		re:      regexp.MustCompile(`^(?:meus )?lembretes$`),
		extract: func([]string) Command { return Command{Kind: KindListReminders} },
	},
	{
		re:      regexp.MustCompile(`^relat[oó]rio (?:semanal|da semana)$`),
		extract: func([]string) Command { return Command{Kind: KindWeeklyReport} },
	},
	{
		re:      regexp.MustCompile(`^relat[oó]rio (?:mensal|do m[eê]s)$`),
		extract: func([]string) Command { return Command{Kind: KindMonthlyReport} },
	},
	{
		re:      regexp.MustCompile(`^relat[oó]rio$`),
		extract: func([]string) Command { return Command{Kind: KindFullReport} },
	},
}

func completion(g []string) Command {
	return Command{Kind: KindCompleteReminder, Category: Capitalize(g[1])}
}

func categoryAmount(kind Kind, g []string) Command {
	// Alternative 1 captured "<valor> <categoria>", alternative 2 the
	// canonical "<categoria> <valor>".
	if g[1] != "" {
		return Command{Kind: kind, Category: Capitalize(g[2]), Amount: g[1]}
	}
	return Command{Kind: kind, Category: Capitalize(g[3]), Amount: g[4]}
}

// Parse normalizes text and returns the first matching command, or
// KindUnknown when nothing in the grammar applies.
func Parse(text string) Command {
	normalized := Normalize(text)
	for _, m := range grammar {
		if groups := m.re.FindStringSubmatch(normalized); groups != nil {
			return m.extract(groups)
		}
	}
	return Command{Kind: KindUnknown}
}
