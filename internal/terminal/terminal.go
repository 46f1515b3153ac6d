package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arcadelab/tictacai/internal/apperror"
	"github.com/arcadelab/tictacai/internal/engine"
	"github.com/arcadelab/tictacai/internal/entity"
)

var errQuit = errors.New("player quit")

type session interface {
	StartGame(difficulty engine.Difficulty, firstMark string) *entity.Game
	HumanTurn(game *entity.Game, cell int) error
	BotTurn(game *entity.Game) (engine.Decision, error)
	Analyze(game *entity.Game) (int, []engine.Advice)
	FinishGame(ctx context.Context, game *entity.Game) error
	Summary(ctx context.Context) (*entity.StatsSummary, error)
	RecentGames(ctx context.Context, limit int) ([]*entity.GameRecord, error)
}

// Terminal is the interactive front end: it prompts, renders and dispatches
// in-game commands, leaving all game logic to the session layer.
type Terminal struct {
	logger  *slog.Logger
	session session

	in  *bufio.Scanner
	out *termenv.Output

	difficulty   engine.Difficulty
	historyLimit int
	handlers     map[string]func(ctx context.Context, game *entity.Game) error
}

func New(logger *slog.Logger, sess session, in io.Reader, out io.Writer, difficulty engine.Difficulty, historyLimit int) *Terminal {
	terminal := &Terminal{
		logger:  logger.With("component", "terminal"),
		session: sess,

		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out),

		difficulty:   difficulty,
		historyLimit: historyLimit,
	}

	terminal.handlers = map[string]func(ctx context.Context, game *entity.Game) error{
		"q": func(context.Context, *entity.Game) error { return errQuit },
		"h": terminal.handleTips,
		"a": terminal.handleAnalyze,
		"d": terminal.handleDifficulty,
		"s": terminal.handleStatistics,
	}

	return terminal
}

// Run drives the session loop until the player quits or the context is
// cancelled.
func (that *Terminal) Run(ctx context.Context) error {
	that.showWelcome()

	if err := that.chooseDifficulty(); err != nil {
		return that.finish(err)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		firstMark, err := that.chooseFirstMark()
		if err != nil {
			return that.finish(err)
		}

		game := that.session.StartGame(that.difficulty, firstMark)

		if err = that.playGame(ctx, game); err != nil {
			return that.finish(err)
		}

		if err = that.session.FinishGame(ctx, game); err != nil {
			that.logger.Error("could not record game", "game_id", game.ID, "error", err)
		}

		again, err := that.showGameOver(ctx, game)
		if err != nil {
			return that.finish(err)
		}

		if !again {
			return nil
		}
	}
}

// playGame alternates turns until the game finishes or the player quits.
func (that *Terminal) playGame(ctx context.Context, game *entity.Game) error {
	human := game.HumanPlayer()

	for game.IsOngoing() {
		if ctx.Err() != nil {
			return nil
		}

		that.showBoardScreen(game)

		if game.Turn == human.Mark {
			if err := that.humanTurn(ctx, game); err != nil {
				return err
			}

			continue
		}

		if err := that.botTurn(game); err != nil {
			return err
		}
	}

	return nil
}

// humanTurn prompts until the player enters a legal move, a command, or quits.
func (that *Terminal) humanTurn(ctx context.Context, game *entity.Game) error {
	that.printColored(fmt.Sprintf("\nYour turn (%s)", game.HumanPlayer().Mark), termenv.ANSIGreen)
	that.printColored("Enter position (0-8), or 'q' quit, 'h' tips, 'a' analyze, 'd' difficulty, 's' statistics:", termenv.ANSIYellow)

	for {
		input, err := that.readLine("> ")
		if err != nil {
			return err
		}

		if handler, ok := that.handlers[input]; ok {
			if err = handler(ctx, game); err != nil {
				return err
			}
			continue
		}

		cell, err := strconv.Atoi(input)
		if err != nil {
			that.printColored("Please enter a number between 0 and 8, or a command", termenv.ANSIRed)
			continue
		}

		if err = that.session.HumanTurn(game, cell); err != nil {
			if errors.Is(err, apperror.ErrIllegalMove) {
				that.printColored("That position is not available!", termenv.ANSIRed)
				continue
			}

			return fmt.Errorf("human turn failed: %w", err)
		}

		return nil
	}
}

// botTurn lets the AI move and reports its thinking stats.
func (that *Terminal) botTurn(game *entity.Game) error {
	that.printColored(fmt.Sprintf("\nAI's turn (%s), thinking...", game.BotPlayer().Mark), termenv.ANSIRed)

	decision, err := that.session.BotTurn(game)
	if err != nil {
		return fmt.Errorf("bot turn failed: %w", err)
	}

	that.printColored(fmt.Sprintf("AI plays at position %d", decision.Cell), termenv.ANSIRed)

	if decision.Search != nil {
		that.printColored(fmt.Sprintf("  nodes explored: %d | score: %d | time: %s",
			decision.Search.Nodes, decision.Search.Score, decision.Search.Elapsed), termenv.ANSIYellow)
	}

	return nil
}

// chooseDifficulty shows the tier menu and updates the active difficulty.
func (that *Terminal) chooseDifficulty() error {
	that.printColored("\nSelect Difficulty Level:", termenv.ANSIMagenta)

	tiers := []engine.Difficulty{
		engine.DifficultyEasy,
		engine.DifficultyMedium,
		engine.DifficultyHard,
		engine.DifficultyUnbeatable,
	}

	for i, tier := range tiers {
		that.printColored(fmt.Sprintf("%d. %s", i+1, tier), termenv.ANSIYellow)
	}

	for {
		input, err := that.readLine("Enter choice (1-4): ")
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(tiers) {
			that.printColored("Invalid choice!", termenv.ANSIRed)
			continue
		}

		that.difficulty = tiers[choice-1]
		that.printColored(fmt.Sprintf("Difficulty set to %s!", strings.ToUpper(string(that.difficulty))), termenv.ANSIGreen)

		return nil
	}
}

// chooseFirstMark asks who opens the game.
func (that *Terminal) chooseFirstMark() (string, error) {
	that.printColored("\nWho goes first?", termenv.ANSIMagenta)
	that.printColored("1. You", termenv.ANSIYellow)
	that.printColored("2. AI", termenv.ANSIYellow)

	for {
		input, err := that.readLine("Enter choice (1-2): ")
		if err != nil {
			return "", err
		}

		switch input {
		case "1":
			return engine.PlayerO, nil
		case "2":
			return engine.PlayerX, nil
		default:
			that.printColored("Invalid choice!", termenv.ANSIRed)
		}
	}
}

// readLine prompts and returns one trimmed, lowercased input line.
func (that *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", errQuit // EOF
	}

	return strings.ToLower(strings.TrimSpace(that.in.Text())), nil
}

// finish swallows the quit sentinel so an intended exit is not an error.
func (that *Terminal) finish(err error) error {
	if errors.Is(err, errQuit) {
		that.printColored("\nThanks for playing!", termenv.ANSIYellow)
		return nil
	}

	return err
}
