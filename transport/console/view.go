package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const (
	movePrompt      = "Make a move: "
	columnSeparator = "  "
)

// View - everything the player sees and types.
type View struct {
	in     *bufio.Scanner
	out    io.Writer
	status *color.Color
}

func New(in io.Reader, out io.Writer, colorize bool) *View {
	status := color.New(color.FgYellow, color.Bold)
	if colorize {
		status.EnableColor()
	} else {
		status.DisableColor()
	}

	return &View{
		in:     bufio.NewScanner(in),
		out:    out,
		status: status,
	}
}

func (that *View) ShowSessionID(id string) {
	fmt.Fprintln(that.out, "ID: "+id)
}

func (that *View) ShowServerStartsCode(code int) {
	fmt.Fprintln(that.out, "serverStarts response code: "+strconv.Itoa(code))
}

func (that *View) ShowBoard(board entity.Board) {
	fmt.Fprintf(that.out, "Board:\n%s", RenderBoard(board))
}

func (that *View) ShowStatus(status string) {
	that.status.Fprintln(that.out, status)
}

// ShowMove echoes a move nobody typed, so the transcript reads the same as a human game.
func (that *View) ShowMove(move int) {
	fmt.Fprintln(that.out, movePrompt+strconv.Itoa(move))
}

// ReadMove prompts for and reads one integer. Anything else, end of input included, is ErrInvalidInput.
func (that *View) ReadMove(_ entity.Board) (int, error) {
	fmt.Fprint(that.out, movePrompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
		}

		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, io.ErrUnexpectedEOF)
	}

	move, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	return move, nil
}

// RenderBoard lays the board out as a table: column indexes on top, row indexes on the
// left, cells right-aligned under their column.
func RenderBoard(board entity.Board) string {
	columns := 0
	for _, row := range board {
		columns = max(columns, len(row))
	}

	indexWidth := len(strconv.Itoa(max(len(board)-1, 0)))

	widths := make([]int, columns)
	for col := range widths {
		widths[col] = len(strconv.Itoa(col))
		for _, row := range board {
			if col < len(row) {
				widths[col] = max(widths[col], len(row[col]))
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", indexWidth))
	for col, width := range widths {
		sb.WriteString(columnSeparator)
		sb.WriteString(pad(strconv.Itoa(col), width))
	}
	sb.WriteString("\n")

	for i, row := range board {
		sb.WriteString(fmt.Sprintf("%-*d", indexWidth, i))
		for col, width := range widths {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			sb.WriteString(columnSeparator)
			sb.WriteString(pad(cell, width))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func pad(value string, width int) string {
	return fmt.Sprintf("%*s", width, value)
}
