package view

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmafra/gestor/internal/task"
)

type tasksState int

const (
	tasksStateBrowse tasksState = iota
	tasksStateAdd
)

type TasksModel struct {
	CommonModel
	taskService *task.Service

	state  tasksState
	table  table.Model
	tasks  []task.Task
	form   *huh.Form
	status string

	formTitle       string
	formDescription string
	formDueDate     string
	formPriority    string
}

func NewTasksModel(taskSvc *task.Service) TasksModel {
	columns := []table.Column{
		{Title: "Título", Width: 30},
		{Title: "Prazo", Width: 12},
		{Title: "Prioridade", Width: 10},
		{Title: "Seção", Width: 12},
		{Title: "Feita", Width: 6},
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

	m := TasksModel{
		taskService: taskSvc,
		table:       t,
	}
	m.refresh()

	return m
}

func (m *TasksModel) refresh() {
	m.tasks = m.taskService.List()

	rows := make([]table.Row, 0, len(m.tasks))
	for _, t := range m.tasks {
		done := ""
		if t.Completed {
			done = "x"
		}

		rows = append(rows, table.Row{
			t.Title,
			t.DueDate,
			string(t.Priority),
			string(t.Category),
			done,
		})
	}

	m.table.SetRows(rows)
}

func (m TasksModel) Init() tea.Cmd {
	return nil
}

func (m TasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(sizeMsg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tasksStateBrowse:
		return m.updateBrowse(msg)
	case tasksStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TasksModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "a":
			return m.enterAddMode()
		case " ":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.tasks) {
				m.taskService.Toggle(m.tasks[cursor].ID)
				m.refresh()
			}

			return m, nil
		case "x":
			if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.tasks) {
				m.taskService.Delete(m.tasks[cursor].ID)
				m.status = "tarefa removida"
				m.refresh()
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TasksModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.state = tasksStateAdd
	m.formTitle = ""
	m.formDescription = ""
	m.formDueDate = Today()
	m.formPriority = string(task.PriorityMedium)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Título").Value(&m.formTitle),
			huh.NewInput().Title("Descrição").Value(&m.formDescription),
			huh.NewInput().Title("Prazo (YYYY-MM-DD)").Value(&m.formDueDate),
			huh.NewSelect[string]().
				Title("Prioridade").
				Options(
					huh.NewOption("Baixa", string(task.PriorityLow)),
					huh.NewOption("Média", string(task.PriorityMedium)),
					huh.NewOption("Alta", string(task.PriorityHigh)),
				).
				Value(&m.formPriority),
		),
	)

	return m, m.form.Init()
}

func (m TasksModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = tasksStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.taskService.Create(task.CreateParams{
			Title:       m.formTitle,
			Description: m.formDescription,
			DueDate:     m.formDueDate,
			Priority:    task.Priority(m.formPriority),
		})

		m.status = "tarefa criada"
		m.state = tasksStateBrowse
		m.form = nil
		m.refresh()

		return m, nil
	}

	return m, cmd
}

func (m TasksModel) View() string {
	if m.state == tasksStateAdd && m.form != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			titleStyle.Render("Nova Tarefa") + "\n\n" + m.form.View(),
		)
	}

	help := "Esc: voltar | a: nova | espaço: alternar | x: remover"

	body := titleStyle.Render("Tarefas") + "\n\n" + m.table.View() + "\n\n" + help
	if m.status != "" {
		body += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
