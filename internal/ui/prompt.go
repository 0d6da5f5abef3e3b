// Package ui provides interactive terminal prompts for category selection
// and deletion confirmation.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/reclaimdev/reclaim/internal/scanner"
	"github.com/reclaimdev/reclaim/pkg/utils"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("selection cancelled")

// categoryItem represents a selectable category row
type categoryItem struct {
	category scanner.Category
	count    int
	size     int64
	selected bool
}

// selectModel handles category selection
type selectModel struct {
	items     []categoryItem
	cursor    int
	confirmed bool
	cancelled bool
}

func newSelectModel(report *scanner.ScanReport) selectModel {
	var items []categoryItem
	for _, category := range report.Categories() {
		cr := report.ReportFor(category)
		items = append(items, categoryItem{
			category: category,
			count:    len(cr.Items),
			size:     cr.TotalSize(),
		})
	}
	return selectModel{items: items}
}

// Init initializes the selection model
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles key messages
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "space", " ":
			if m.cursor >= 0 && m.cursor < len(m.items) {
				m.items[m.cursor].selected = !m.items[m.cursor].selected
			}
		case "a":
			for i := range m.items {
				m.items[i].selected = true
			}
		case "n":
			for i := range m.items {
				m.items[i].selected = false
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the selection list
func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select categories to clean"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓:move  space:toggle  a:all  n:none  enter:confirm  q:cancel"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("→ ")
		}

		checkbox := "[ ]"
		if item.selected {
			checkbox = checkedStyle.Render("[x]")
		}

		b.WriteString(fmt.Sprintf("%s%s %-8s %s across %d item(s)\n",
			cursor,
			checkbox,
			nameStyle.Render(item.category.String()),
			sizeStyle.Render(utils.FormatBytes(item.size)),
			item.count,
		))
	}

	var selectedSize int64
	for _, item := range m.items {
		if item.selected {
			selectedSize += item.size
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("Selected: %s", utils.FormatBytes(selectedSize))))
	b.WriteString("\n")

	return b.String()
}

func (m selectModel) selections() []scanner.Category {
	var selected []scanner.Category
	for _, item := range m.items {
		if item.selected {
			selected = append(selected, item.category)
		}
	}
	return selected
}

// SelectCategories asks the user which of the scanned categories to clean.
// On a TTY it runs an interactive list; otherwise it falls back to a plain
// line prompt. Returns ErrCancelled if the user aborts or selects nothing.
func SelectCategories(report *scanner.ScanReport) ([]scanner.Category, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return selectCategoriesPlain(report)
	}

	program := tea.NewProgram(newSelectModel(report))
	result, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive prompt failed: %w", err)
	}

	m, ok := result.(selectModel)
	if !ok || m.cancelled || !m.confirmed {
		return nil, ErrCancelled
	}
	selected := m.selections()
	if len(selected) == 0 {
		return nil, ErrCancelled
	}
	return selected, nil
}

// selectCategoriesPlain is the non-TTY fallback: the user types category
// names, 1-based indexes, or "all", separated by spaces or commas.
func selectCategoriesPlain(report *scanner.ScanReport) ([]scanner.Category, error) {
	categories := report.Categories()

	fmt.Println("Select categories to clean:")
	for i, category := range categories {
		cr := report.ReportFor(category)
		fmt.Printf("  %d) %-8s %s across %d item(s)\n",
			i+1, category.String(), utils.FormatBytes(cr.TotalSize()), len(cr.Items))
	}
	fmt.Print("Enter names, numbers, or \"all\" (empty cancels): ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, ErrCancelled
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrCancelled
	}
	if strings.EqualFold(line, "all") {
		return categories, nil
	}

	seen := make(map[scanner.Category]bool)
	var selected []scanner.Category
	for _, tok := range strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' }) {
		var category scanner.Category
		if n, convErr := strconv.Atoi(tok); convErr == nil {
			if n < 1 || n > len(categories) {
				return nil, fmt.Errorf("no category numbered %d", n)
			}
			category = categories[n-1]
		} else {
			category, err = scanner.ParseCategory(tok)
			if err != nil {
				return nil, err
			}
		}
		if !seen[category] {
			seen[category] = true
			selected = append(selected, category)
		}
	}
	if len(selected) == 0 {
		return nil, ErrCancelled
	}
	return selected, nil
}

// ConfirmDeletion asks the user to confirm before anything is removed.
// Only an explicit "y" or "yes" proceeds.
func ConfirmDeletion(total int64) bool {
	fmt.Printf("Delete %s of build artifacts and caches? [y/N]: ", utils.FormatBytes(total))

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
