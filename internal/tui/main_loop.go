package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/flightsearch/flightsearch/internal/adapter"
	"github.com/flightsearch/flightsearch/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type searchTypeOption struct {
	value models.SearchType
	label string
}

var searchTypeOptions = []searchTypeOption{
	{value: "", label: "авто"},
	{value: models.SearchTypeCallsign, label: "рейс"},
	{value: models.SearchTypeAircraft, label: "борт"},
	{value: models.SearchTypeAirline, label: "авиакомпания"},
}

type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	user   models.User

	searchInput textinput.Model
	typeIdx     int

	stats        models.PopularStats
	statsLoading bool

	searching bool
	result    *models.SearchResponse
	detail    bool

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter, user models.User) mainLoopModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "BA123, ABC123 или BAW"
	searchInput.CharLimit = 64
	searchInput.Width = 40
	searchInput.Focus()

	return mainLoopModel{
		ctx:          ctx,
		server:       server,
		user:         user,
		searchInput:  searchInput,
		statsLoading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadStats())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.statsLoading = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				m.logout = true
				return m, tea.Quit
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		return m, nil
	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				m.logout = true
				return m, tea.Quit
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		result := msg.result
		m.result = &result
		m.detail = true
		// popular counters moved, pick the change up on return
		m.statsLoading = true
		return m, m.cmdLoadStats()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано в буфер обмена"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if !m.detail {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		m.logout = true
		return m, tea.Quit
	case "ctrl+r":
		if !m.statsLoading {
			m.statsLoading = true
			m.status = ""
			return m, m.cmdLoadStats()
		}
		return m, nil
	case "tab":
		m.typeIdx = (m.typeIdx + 1) % len(searchTypeOptions)
		return m, nil
	case "shift+tab":
		m.typeIdx = (m.typeIdx - 1 + len(searchTypeOptions)) % len(searchTypeOptions)
		return m, nil
	case "esc":
		m.searchInput.SetValue("")
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "enter":
		if m.searching {
			return m, nil
		}

		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			m.errMsg = "Введите запрос"
			return m, nil
		}

		m.status = ""
		m.errMsg = ""
		m.searching = true
		return m, m.cmdSearch(query, searchTypeOptions[m.typeIdx].value)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.detail = false
		m.status = ""
		return m, nil
	case "c":
		if m.result == nil {
			return m, nil
		}
		payload := renderResultJSON(*m.result)
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(payload)}
		}
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	if m.detail && m.result != nil {
		return m.viewDetail()
	}
	return m.viewSearch()
}

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder

	b.WriteString("Пользователь: ")
	b.WriteString(m.user.Email)
	b.WriteString("\n\n")

	b.WriteString("Запрос  │ [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]\n")
	b.WriteString("Тип     │ ")
	b.WriteString(searchTypeOptions[m.typeIdx].label)
	b.WriteString("\n")

	if m.searching {
		b.WriteString("\n[Поиск...]\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewStats())

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(
		"ПОИСК РЕЙСОВ",
		strings.TrimRight(b.String(), "\n"),
		"enter: искать │ tab: тип │ ctrl+r: обновить │ ctrl+l: сменить пользователя",
	)
}

func (m mainLoopModel) viewStats() string {
	if m.statsLoading {
		return "Популярные запросы: загрузка...\n"
	}

	var b strings.Builder
	b.WriteString("Популярные запросы:\n")
	b.WriteString(viewStatsSection("Рейсы", m.stats.Callsign))
	b.WriteString(viewStatsSection("Борта", m.stats.Aircraft))
	b.WriteString(viewStatsSection("Авиакомпании", m.stats.Airline))
	return b.String()
}

func viewStatsSection(title string, items []models.PopularQueryItem) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString("  -\n")
		return b.String()
	}

	for i, item := range items {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("  %-12s %d\n", fitText(item.Query, 12), item.Count))
	}
	return b.String()
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder

	b.WriteString("Тип: ")
	b.WriteString(searchTypeLabel(m.result.Type))
	b.WriteString("\n\n")
	b.WriteString(renderResultJSON(*m.result))

	if m.status != "" {
		b.WriteString("\n\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\nОшибка: ")
		b.WriteString(m.errMsg)
	}

	return renderPage(
		"РЕЗУЛЬТАТ ПОИСКА",
		strings.TrimRight(b.String(), "\n"),
		"esc: назад │ c: копировать │ q: выход",
	)
}

func searchTypeLabel(t models.SearchType) string {
	for _, opt := range searchTypeOptions {
		if opt.value == t {
			return opt.label
		}
	}
	return string(t)
}

func renderResultJSON(result models.SearchResponse) string {
	pretty, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", result.Data)
	}
	return string(pretty)
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		stats, err := server.PopularStats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m mainLoopModel) cmdSearch(query string, searchType models.SearchType) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		result, err := server.Search(ctx, query, searchType)
		return searchDoneMsg{result: result, err: err}
	}
}
