package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/entity"
)

const headerWidth = 60

// adviceText maps the engine's symbolic advice flags to prose.
var adviceText = map[engine.Advice]string{
	engine.AdviceWinAvailable: "AI can win next move!",
	engine.AdviceLossThreat:   "You can win next move!",
	engine.AdviceCenterOpen:   "Center control is available (key position!)",
	engine.AdviceCornersOpen:  "Multiple corners available (good strategic positions)",
	engine.AdviceForkThreat:   "Fork threat: two winning lines open at once",
}

var gameTips = []string{
	"1. Take the center (position 4) if available",
	"2. Corners (0, 2, 6, 8) are stronger than edges",
	"3. Create forks (threats in two directions)",
	"4. Block opponent's potential winning lines",
	"5. Watch for opponent's forcing moves",
}

func (that *Terminal) printColored(text string, color termenv.ANSIColor) {
	fmt.Fprintln(that.out, that.out.String(text).Foreground(color))
}

func (that *Terminal) printHeader(title string, color termenv.ANSIColor) {
	line := strings.Repeat("=", headerWidth)

	that.printColored(line, termenv.ANSICyan)
	that.printColored(center(title, headerWidth), color)
	that.printColored(line, termenv.ANSICyan)
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}

	pad := (width - len(text)) / 2

	return strings.Repeat(" ", pad) + text
}

func (that *Terminal) showWelcome() {
	that.out.ClearScreen()

	that.printHeader("TIC-TAC-TOE AI", termenv.ANSIGreen)
	that.printColored(center("Minimax with Alpha-Beta Pruning", headerWidth), termenv.ANSIYellow)
	that.printColored("\nYou are playing as 'O' against the AI 'X'", termenv.ANSIYellow)
}

// showBoardScreen renders the game header, the position reference and the
// current board.
func (that *Terminal) showBoardScreen(game *entity.Game) {
	that.out.ClearScreen()

	that.printHeader("TIC-TAC-TOE AI", termenv.ANSIGreen)
	that.printColored(fmt.Sprintf("\nGame %s | Difficulty: %s | Moves: %d",
		game.ID, strings.ToUpper(string(game.Difficulty)), game.Moves), termenv.ANSIYellow)

	that.renderPositions()
	that.renderBoard(game.Board)
}

// renderPositions shows the cell numbering reference.
func (that *Terminal) renderPositions() {
	that.printColored("\nBoard Positions Reference:", termenv.ANSICyan)
	that.printColored(" 0 | 1 | 2 ", termenv.ANSIYellow)
	that.printColored("---+---+---", termenv.ANSIYellow)
	that.printColored(" 3 | 4 | 5 ", termenv.ANSIYellow)
	that.printColored("---+---+---", termenv.ANSIYellow)
	that.printColored(" 6 | 7 | 8 ", termenv.ANSIYellow)
}

// renderBoard prints the current board with colored marks.
func (that *Terminal) renderBoard(board engine.Board) {
	that.printColored("\nCurrent Game Board:\n", termenv.ANSICyan)

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)

		for col := 0; col < 3; col++ {
			idx := row*3 + col

			switch board[idx] {
			case engine.PlayerX:
				cells = append(cells, that.out.String(" X ").Foreground(termenv.ANSIRed).String())
			case engine.PlayerO:
				cells = append(cells, that.out.String(" O ").Foreground(termenv.ANSIGreen).String())
			default:
				cells = append(cells, that.out.String(fmt.Sprintf(" %d ", idx)).Foreground(termenv.ANSIYellow).Faint().String())
			}
		}

		fmt.Fprintln(that.out, "   "+strings.Join(cells, "|"))

		if row != 2 {
			fmt.Fprintln(that.out, "   ---+---+---")
		}
	}

	fmt.Fprintln(that.out)
}

// handleTips prints strategy tips.
func (that *Terminal) handleTips(_ context.Context, _ *entity.Game) error {
	that.printColored("\nTic-Tac-Toe Strategy Tips:", termenv.ANSIMagenta)

	for _, tip := range gameTips {
		that.printColored("   "+tip, termenv.ANSIYellow)
	}

	return nil
}

// handleAnalyze prints the position analysis built from the engine's advice
// flags and display score.
func (that *Terminal) handleAnalyze(_ context.Context, game *entity.Game) error {
	score, advice := that.session.Analyze(game)

	that.printColored("\nPosition Analysis:", termenv.ANSIMagenta)

	switch {
	case score > 5:
		that.printColored(fmt.Sprintf("   AI has strong position (score: %d)", score), termenv.ANSIGreen)
	case score < -5:
		that.printColored(fmt.Sprintf("   You have strong position (score: %d)", score), termenv.ANSIRed)
	default:
		that.printColored(fmt.Sprintf("   Position is balanced (score: %d)", score), termenv.ANSIYellow)
	}

	for _, flag := range advice {
		if text, ok := adviceText[flag]; ok {
			that.printColored("   "+text, termenv.ANSICyan)
		}
	}

	return nil
}

// handleDifficulty re-runs the difficulty menu mid-game; the new tier applies
// from the bot's next move.
func (that *Terminal) handleDifficulty(_ context.Context, game *entity.Game) error {
	if err := that.chooseDifficulty(); err != nil {
		return err
	}

	game.Difficulty = that.difficulty

	return nil
}

// handleStatistics shows the aggregate record and recent games.
func (that *Terminal) handleStatistics(ctx context.Context, _ *entity.Game) error {
	summary, err := that.session.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	that.printHeader("GAME STATISTICS", termenv.ANSIGreen)

	total := summary.TotalGames()
	that.printColored(fmt.Sprintf("\nTotal Games Played: %d", total), termenv.ANSIYellow)

	if total > 0 {
		that.printColored(fmt.Sprintf("  AI Wins: %d (%.1f%%)", summary.AIWins, percent(summary.AIWins, total)), termenv.ANSIRed)
		that.printColored(fmt.Sprintf("  Your Wins: %d (%.1f%%)", summary.HumanWins, percent(summary.HumanWins, total)), termenv.ANSIGreen)
		that.printColored(fmt.Sprintf("  Ties: %d (%.1f%%)", summary.Ties, percent(summary.Ties, total)), termenv.ANSIYellow)
	}

	records, err := that.session.RecentGames(ctx, that.historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load recent games: %w", err)
	}

	if len(records) > 0 {
		that.printColored("\nRecent Games:", termenv.ANSIMagenta)

		for _, record := range records {
			switch record.Winner {
			case engine.PlayerX:
				that.printColored(fmt.Sprintf("  %s: AI won in %d moves (%s)", record.ID, record.Moves, record.Difficulty), termenv.ANSIRed)
			case engine.PlayerO:
				that.printColored(fmt.Sprintf("  %s: You won in %d moves (%s)", record.ID, record.Moves, record.Difficulty), termenv.ANSIGreen)
			default:
				that.printColored(fmt.Sprintf("  %s: Tie (%s)", record.ID, record.Difficulty), termenv.ANSIYellow)
			}
		}
	}

	return nil
}

// showGameOver renders the final screen and asks what to do next. It returns
// false when the player wants to exit.
func (that *Terminal) showGameOver(ctx context.Context, game *entity.Game) (bool, error) {
	that.out.ClearScreen()

	switch game.Winner {
	case game.BotPlayer().Mark:
		that.printHeader("GAME OVER - AI WINS!", termenv.ANSIRed)
	case game.HumanPlayer().Mark:
		that.printHeader("VICTORY - YOU WIN!", termenv.ANSIGreen)
	default:
		that.printHeader("DRAW GAME", termenv.ANSIYellow)
	}

	that.renderBoard(game.Board)

	that.printColored(fmt.Sprintf("Total moves: %d | Difficulty: %s",
		game.Moves, strings.ToUpper(string(game.Difficulty))), termenv.ANSIYellow)

	that.printColored("\nOptions:", termenv.ANSICyan)
	that.printColored("  1. Play Again", termenv.ANSIYellow)
	that.printColored("  2. Change Difficulty", termenv.ANSIYellow)
	that.printColored("  3. View Statistics", termenv.ANSIYellow)
	that.printColored("  4. Exit", termenv.ANSIYellow)

	for {
		input, err := that.readLine("Select option (1-4): ")
		if err != nil {
			return false, err
		}

		switch input {
		case "1":
			return true, nil
		case "2":
			if err = that.chooseDifficulty(); err != nil {
				return false, err
			}
			return true, nil
		case "3":
			if err = that.handleStatistics(ctx, game); err != nil {
				return false, err
			}
		case "4":
			return false, nil
		default:
			that.printColored("Invalid choice!", termenv.ANSIRed)
		}
	}
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
