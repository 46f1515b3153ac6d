package engine

// Heuristic weights for non-terminal positions. The exact numbers are
// tunable policy; the invariant that matters is monotonicity: more
// favorable structure never scores lower, all else equal.
const (
	wonScore = 100

	nearWinWeight  = 10
	openLineWeight = 1
	centerWeight   = 3
	cornerWeight   = 2
	edgeWeight     = 1
	forkWeight     = 15
)

// Advice is a symbolic flag describing a positional feature, derived from the
// same features the heuristic scores. The presentation layer turns these into
// prose.
type Advice string

const (
	AdviceWinAvailable Advice = "win-available"
	AdviceLossThreat   Advice = "loss-threat"
	AdviceCenterOpen   Advice = "center-open"
	AdviceCornersOpen  Advice = "corners-open"
	AdviceForkThreat   Advice = "fork-threat"
)

// Evaluate scores a position from the AI's perspective: +wonScore/-wonScore
// for a decided board, zero for a draw, otherwise the positional heuristic.
func Evaluate(board Board, aiMark, playerMark string) int {
	switch board.Winner() {
	case aiMark:
		return wonScore
	case playerMark:
		return -wonScore
	}

	if board.IsFull() {
		return 0
	}

	return heuristic(&board, aiMark, playerMark)
}

// EvaluateForDisplay returns the heuristic score together with the advice
// flags for the "analyze position" feature.
func EvaluateForDisplay(board Board, aiMark, playerMark string) (int, []Advice) {
	score := Evaluate(board, aiMark, playerMark)

	advice := make([]Advice, 0, 4)

	if _, ok := winningMove(&board, aiMark); ok {
		advice = append(advice, AdviceWinAvailable)
	}

	if _, ok := winningMove(&board, playerMark); ok {
		advice = append(advice, AdviceLossThreat)
	}

	if board[CenterCell] == EmptyCell {
		advice = append(advice, AdviceCenterOpen)
	}

	openCorners := 0
	for _, corner := range CornerCells {
		if board[corner] == EmptyCell {
			openCorners++
		}
	}
	if openCorners >= 2 {
		advice = append(advice, AdviceCornersOpen)
	}

	if nearWinLines(&board, playerMark) >= 2 {
		advice = append(advice, AdviceForkThreat)
	}

	return score, advice
}

// heuristic is the cutoff-node evaluation used by depth-limited search:
// a weighted sum over line and square features, symmetric in both marks.
func heuristic(board *Board, aiMark, playerMark string) int {
	score := 0

	for _, line := range WinLines {
		var own, opp, empty int
		for _, cell := range line {
			switch board[cell] {
			case aiMark:
				own++
			case playerMark:
				opp++
			default:
				empty++
			}
		}

		switch {
		case own == 2 && empty == 1:
			score += nearWinWeight
		case opp == 2 && empty == 1:
			score -= nearWinWeight
		case own == 1 && empty == 2:
			score += openLineWeight
		case opp == 1 && empty == 2:
			score -= openLineWeight
		}
	}

	switch board[CenterCell] {
	case aiMark:
		score += centerWeight
	case playerMark:
		score -= centerWeight
	}

	for _, corner := range CornerCells {
		switch board[corner] {
		case aiMark:
			score += cornerWeight
		case playerMark:
			score -= cornerWeight
		}
	}

	for _, edge := range EdgeCells {
		switch board[edge] {
		case aiMark:
			score += edgeWeight
		case playerMark:
			score -= edgeWeight
		}
	}

	// A fork (two or more simultaneous winning threats) is decisive: the
	// opponent can only block one of them.
	if nearWinLines(board, aiMark) >= 2 {
		score += forkWeight
	}
	if nearWinLines(board, playerMark) >= 2 {
		score -= forkWeight
	}

	return score
}

// nearWinLines counts lines holding two of mark with the third cell empty.
func nearWinLines(board *Board, mark string) int {
	count := 0

	for _, line := range WinLines {
		var own, empty int
		for _, cell := range line {
			switch board[cell] {
			case mark:
				own++
			case EmptyCell:
				empty++
			}
		}

		if own == 2 && empty == 1 {
			count++
		}
	}

	return count
}
