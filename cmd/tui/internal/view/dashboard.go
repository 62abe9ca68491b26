package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/crm"
	"github.com/dmafra/gestor/internal/prefs"
	"github.com/dmafra/gestor/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("57"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type DashboardModel struct {
	CommonModel
	txService    *cashflow.Service
	taskService  *task.Service
	pipeline     *crm.Pipeline
	prefsService *prefs.Service
}

func NewDashboardModel(txSvc *cashflow.Service, taskSvc *task.Service, pipeline *crm.Pipeline, prefsSvc *prefs.Service) DashboardModel {
	// Opening the overview refreshes the cached chart series.
	prefsSvc.SetMonthlyCache(cashflow.MonthlyBuckets(txSvc.List(cashflow.ListFilter{})))

	return DashboardModel{
		txService:    txSvc,
		taskService:  taskSvc,
		pipeline:     pipeline,
		prefsService: prefsSvc,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return m, Back
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	txs := m.txService.List(cashflow.ListFilter{})

	var b strings.Builder

	b.WriteString(titleStyle.Render("Visão Geral") + "\n\n")

	income := cashflow.TotalByType(txs, cashflow.TypeIncome)
	expense := cashflow.TotalByType(txs, cashflow.TypeExpense)
	balance := cashflow.Balance(txs)

	balanceStyle := positiveStyle
	if balance < 0 {
		balanceStyle = negativeStyle
	}

	b.WriteString(sectionStyle.Render("Financeiro") + "\n")
	b.WriteString(fmt.Sprintf("  Receitas:  %s\n", positiveStyle.Render(FormatAmount(income))))
	b.WriteString(fmt.Sprintf("  Despesas:  %s\n", negativeStyle.Render(FormatAmount(expense))))
	b.WriteString(fmt.Sprintf("  Saldo:     %s\n\n", balanceStyle.Render(FormatAmount(balance))))

	b.WriteString(sectionStyle.Render("Últimos Meses") + "\n")

	buckets := cashflow.MonthlyBuckets(txs)
	if len(buckets) == 0 {
		b.WriteString("  sem movimentação\n")
	}

	for _, bucket := range buckets {
		b.WriteString(fmt.Sprintf("  %s  receita %s  despesa %s  lucro %s\n",
			bucket.Period,
			FormatAmount(bucket.Income),
			FormatAmount(bucket.Expense),
			FormatAmount(bucket.Profit),
		))
	}

	b.WriteString("\n" + sectionStyle.Render("Tarefas") + "\n")
	b.WriteString(fmt.Sprintf("  Pendentes: %d  Em andamento: %d  Concluídas: %d\n",
		len(m.taskService.ListByCategory(task.CategoryPending)),
		len(m.taskService.ListByCategory(task.CategoryInProgress)),
		len(m.taskService.ListByCategory(task.CategoryCompleted)),
	))

	b.WriteString("\n" + sectionStyle.Render("Funil de Vendas") + "\n")

	for _, count := range m.pipeline.StageCounts() {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", count.Name, count.Count))
	}

	b.WriteString("\n" + sectionStyle.Render("Projetos") + "\n")

	for _, status := range m.prefsService.ProjectStatus() {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", status.Name, status.Value))
	}

	b.WriteString("\nEsc: voltar")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
