package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/dmafra/gestor/internal/cashflow"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateAdd
)

type TransactionsModel struct {
	CommonModel
	txService *cashflow.Service

	state  transactionsState
	table  table.Model
	txs    []cashflow.Transaction
	form   *huh.Form
	status string

	// Filter cycling over all/income/expense
	typeFilterIdx int
	filter        cashflow.ListFilter

	// Form bindings
	formType        string
	formDescription string
	formAmount      string
	formDate        string
	formCategory    string
	formMethod      string
}

func NewTransactionsModel(txSvc *cashflow.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Tipo", Width: 9},
		{Title: "Descrição", Width: 34},
		{Title: "Categoria", Width: 16},
		{Title: "Valor", Width: 14},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := TransactionsModel{
		txService: txSvc,
		table:     t,
	}
	m.refresh()

	return m
}

func (m *TransactionsModel) refresh() {
	m.txs = m.txService.List(m.filter)

	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			tx.Date,
			string(tx.Type),
			tx.Description,
			tx.Category,
			FormatAmount(tx.Amount),
			string(tx.Status),
		})
	}

	m.table.SetRows(rows)
}

func (m TransactionsModel) Init() tea.Cmd {
	return nil
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(sizeMsg.Height - 10)
		return m, nil
	}

	switch m.state {
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	case transactionsStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterAddMode()
		case "x":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.txs) {
				m.txService.Delete(m.txs[cursor].ID)
				m.status = "transação removida"
				m.refresh()
			}

			return m, nil
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			m.applyFilter()
			m.refresh()

			return m, nil
		case "s":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.txs) {
				next := nextStatus(m.txs[cursor].Status)
				m.txService.Update(m.txs[cursor].ID, cashflow.UpdateParams{Status: &next})
				m.refresh()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func nextStatus(s cashflow.Status) cashflow.Status {
	switch s {
	case cashflow.StatusCompleted:
		return cashflow.StatusPending
	case cashflow.StatusPending:
		return cashflow.StatusCancelled
	default:
		return cashflow.StatusCompleted
	}
}

func (m *TransactionsModel) applyFilter() {
	switch m.typeFilterIdx {
	case 1:
		m.filter.Type = new(cashflow.TypeIncome)
	case 2:
		m.filter.Type = new(cashflow.TypeExpense)
	default:
		m.filter.Type = nil
	}
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.state = transactionsStateAdd
	m.formType = string(cashflow.TypeIncome)
	m.formDescription = ""
	m.formAmount = ""
	m.formDate = Today()
	m.formCategory = ""
	m.formMethod = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tipo").
				Options(
					huh.NewOption("Receita", string(cashflow.TypeIncome)),
					huh.NewOption("Despesa", string(cashflow.TypeExpense)),
				).
				Value(&m.formType),
			huh.NewInput().Title("Descrição").Value(&m.formDescription),
			huh.NewInput().Title("Valor (ex. 1234,56)").Value(&m.formAmount),
			huh.NewInput().Title("Data (YYYY-MM-DD)").Value(&m.formDate),
			huh.NewInput().Title("Categoria").Value(&m.formCategory),
			huh.NewSelect[string]().
				Title("Forma de Pagamento").
				Options(paymentOptions()...).
				Value(&m.formMethod),
		),
	)

	return m, m.form.Init()
}

func paymentOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(cashflow.PaymentMethods))
	for _, method := range cashflow.PaymentMethods {
		opts = append(opts, huh.NewOption(method, method))
	}

	return opts
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = transactionsStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		cents, err := parseAmountInput(m.formAmount)
		if err != nil {
			m.status = fmt.Sprintf("valor inválido: %v", err)
		} else {
			m.txService.Create(cashflow.CreateParams{
				Type:          cashflow.Type(m.formType),
				Description:   m.formDescription,
				Amount:        cents,
				Date:          m.formDate,
				Category:      m.formCategory,
				PaymentMethod: m.formMethod,
			})
			m.status = "transação registrada"
		}

		m.state = transactionsStateBrowse
		m.form = nil
		m.refresh()

		return m, nil
	}

	return m, cmd
}

// parseAmountInput accepts "1.234,56", "1234.56" or "1234" in reais.
func parseAmountInput(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func (m TransactionsModel) View() string {
	if m.state == transactionsStateAdd && m.form != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			titleStyle.Render("Nova Transação") + "\n\n" + m.form.View(),
		)
	}

	header := titleStyle.Render("Fluxo de Caixa")

	filterLabel := []string{"todas", "receitas", "despesas"}[m.typeFilterIdx]

	help := "Esc: voltar | a: nova | x: remover | s: status | t: filtro (" + filterLabel + ")"

	body := header + "\n\n" + m.table.View() + "\n\n" + help
	if m.status != "" {
		body += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
