package console

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/saeidalz13/battleship-solo/models/battleship"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Padding(0, 1)
	blankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Padding(0, 1)
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Padding(0, 1)
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Padding(0, 1)
	sunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Padding(0, 1)
)

const (
	symbolBlank = "."
	symbolMiss  = "*"
	symbolHit   = "X"
	symbolSunk  = "^"
)

func displaySymbol(ds battleship.DisplayState) string {
	switch ds {
	case battleship.DisplayStateMiss:
		return symbolMiss
	case battleship.DisplayStateHitMarker:
		return symbolHit
	case battleship.DisplayStateSunkMarker:
		return symbolSunk
	default:
		return symbolBlank
	}
}

func symbolStyle(symbol string) lipgloss.Style {
	switch symbol {
	case symbolMiss:
		return missStyle
	case symbolHit:
		return hitStyle
	case symbolSunk:
		return sunkStyle
	default:
		return blankStyle
	}
}

// RenderBoard draws what the player sees. The header row holds column
// indices and the first column holds row indices.
func RenderBoard(board [][]battleship.DisplayState) string {
	if len(board) == 0 {
		return ""
	}

	headers := make([]string, 0, len(board[0])+1)
	headers = append(headers, "")
	for col := range board[0] {
		headers = append(headers, strconv.Itoa(col))
	}

	rows := make([][]string, 0, len(board))
	for rowIdx, line := range board {
		row := make([]string, 0, len(line)+1)
		row = append(row, strconv.Itoa(rowIdx))
		for _, ds := range line {
			row = append(row, displaySymbol(ds))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		BorderColumn(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 || row >= len(rows) {
				return indexStyle
			}
			return symbolStyle(rows[row][col])
		})

	return t.Render()
}
