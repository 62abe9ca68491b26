package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmafra/gestor/internal/crm"
)

type pipelineState int

const (
	pipelineStateBrowse pipelineState = iota
	pipelineStateAdd
)

// PipelineModel lists every pipeline client with its stage and moves the
// selected record forward or backward through the fixed progression.
type PipelineModel struct {
	CommonModel
	pipeline *crm.Pipeline

	state   pipelineState
	table   table.Model
	clients []crm.Client
	form    *huh.Form
	status  string

	formName    string
	formEmail   string
	formPhone   string
	formCompany string
	formValue   string
}

func NewPipelineModel(pipeline *crm.Pipeline) PipelineModel {
	columns := []table.Column{
		{Title: "Nome", Width: 22},
		{Title: "Empresa", Width: 18},
		{Title: "Etapa", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Valor", Width: 14},
		{Title: "Último Contato", Width: 14},
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

	m := PipelineModel{
		pipeline: pipeline,
		table:    t,
	}
	m.refresh()

	return m
}

func (m *PipelineModel) refresh() {
	m.clients = m.clients[:0]

	rows := []table.Row{}

	for _, stage := range m.pipeline.Stages() {
		for _, c := range stage.Clients {
			m.clients = append(m.clients, c)
			rows = append(rows, table.Row{
				c.Name,
				c.Company,
				stage.Name,
				c.Status,
				FormatAmount(c.Value),
				c.LastContact,
			})
		}
	}

	m.table.SetRows(rows)
}

func (m PipelineModel) Init() tea.Cmd {
	return nil
}

func (m PipelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(sizeMsg.Height - 10)
		return m, nil
	}

	switch m.state {
	case pipelineStateBrowse:
		return m.updateBrowse(msg)
	case pipelineStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m PipelineModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterAddMode()
		case "x":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.clients) {
				m.pipeline.DeleteClient(m.clients[cursor].ID)
				m.status = "cliente removido"
				m.refresh()
			}

			return m, nil
		case "n":
			m.moveSelected(1)
			return m, nil
		case "p":
			m.moveSelected(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// moveSelected shifts the highlighted client one stage in either
// direction, clamped at the pipeline ends.
func (m *PipelineModel) moveSelected(delta int) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.clients) {
		return
	}

	c := m.clients[cursor]

	idx := -1
	for i, id := range crm.StageOrder {
		if id == c.Stage {
			idx = i
			break
		}
	}

	target := idx + delta
	if idx < 0 || target < 0 || target >= len(crm.StageOrder) {
		return
	}

	if _, ok := m.pipeline.MoveToStage(c.ID, crm.StageOrder[target]); ok {
		m.status = c.Name + " movido para " + crm.StageName(crm.StageOrder[target])
		m.refresh()
	}
}

func (m PipelineModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.state = pipelineStateAdd
	m.formName = ""
	m.formEmail = ""
	m.formPhone = ""
	m.formCompany = ""
	m.formValue = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nome").Value(&m.formName),
			huh.NewInput().Title("Email").Value(&m.formEmail),
			huh.NewInput().Title("Telefone").Value(&m.formPhone),
			huh.NewInput().Title("Empresa").Value(&m.formCompany),
			huh.NewInput().Title("Valor estimado (ex. 5000,00)").Value(&m.formValue),
		),
	)

	return m, m.form.Init()
}

func (m PipelineModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = pipelineStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		value, err := parseAmountInput(m.formValue)
		if err != nil {
			value = 0
		}

		m.pipeline.CreateClient(crm.CreateParams{
			Name:    m.formName,
			Email:   m.formEmail,
			Phone:   m.formPhone,
			Company: m.formCompany,
			Value:   value,
		})

		m.status = "cliente registrado em " + crm.StageName(crm.StageOrder[0])
		m.state = pipelineStateBrowse
		m.form = nil
		m.refresh()

		return m, nil
	}

	return m, cmd
}

func (m PipelineModel) View() string {
	if m.state == pipelineStateAdd && m.form != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			titleStyle.Render("Novo Cliente") + "\n\n" + m.form.View(),
		)
	}

	help := "Esc: voltar | a: novo | n: avançar etapa | p: voltar etapa | x: remover"

	body := titleStyle.Render("Funil de Vendas") + "\n\n" + m.table.View() + "\n\n" + help
	if m.status != "" {
		body += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
