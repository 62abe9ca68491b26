package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/dmafra/gestor/cmd/tui/internal/view"
	"github.com/dmafra/gestor/internal/cashflow"
	"github.com/dmafra/gestor/internal/config"
	"github.com/dmafra/gestor/internal/crm"
	"github.com/dmafra/gestor/internal/kv"
	"github.com/dmafra/gestor/internal/prefs"
	"github.com/dmafra/gestor/internal/task"
)

type model struct {
	txService    *cashflow.Service
	taskService  *task.Service
	pipeline     *crm.Pipeline
	prefsService *prefs.Service

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	tasksView        view.TasksModel
	pipelineView     view.PipelineModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewTasks        View = 3
	ViewPipeline     View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := kv.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	txSvc := cashflow.NewService(store)
	taskSvc := task.NewService(store)
	pipeline := crm.NewPipeline(store)
	prefsSvc := prefs.NewService(store)

	return model{
		txService:        txSvc,
		taskService:      taskSvc,
		pipeline:         pipeline,
		prefsService:     prefsSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(txSvc, taskSvc, pipeline, prefsSvc),
		transactionsView: view.NewTransactionsModel(txSvc),
		tasksView:        view.NewTasksModel(taskSvc),
		pipelineView:     view.NewPipelineModel(pipeline),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.txService, m.taskService, m.pipeline, m.prefsService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewTasks
				m.tasksView = view.NewTasksModel(m.taskService)

				return m, m.tasksView.Init()
			case "4":
				m.currentView = ViewPipeline
				m.pipelineView = view.NewPipelineModel(m.pipeline)

				return m, m.pipelineView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewTasks:
		var newModel tea.Model
		newModel, cmd = m.tasksView.Update(msg)
		m.tasksView = newModel.(view.TasksModel)
	case ViewPipeline:
		var newModel tea.Model
		newModel, cmd = m.pipelineView.Update(msg)
		m.pipelineView = newModel.(view.PipelineModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Gestor TUI\n\n" +
				"1. Visão Geral\n" +
				"2. Fluxo de Caixa\n" +
				"3. Tarefas\n" +
				"4. Funil de Vendas\n\n" +
				"q. Sair",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewTasks:
		return m.tasksView.View()
	case ViewPipeline:
		return m.pipelineView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
