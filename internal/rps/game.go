// Package rps implements rock-paper-scissors against a computer opponent
// with a running score.
package rps

import (
	"math/rand"
)

// Move is one of the three possible moves.
type Move int

const (
	MoveRock Move = iota
	MovePaper
	MoveScissors
)

// String returns the display name of the move
func (m Move) String() string {
	switch m {
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// ParseMove maps user input, including short and German aliases, to a move.
func ParseMove(s string) (Move, bool) {
	switch s {
	case "r", "rock", "stone", "st", "stein":
		return MoveRock, true
	case "p", "pa", "paper", "papier":
		return MovePaper, true
	case "s", "sc", "sch", "scissors", "schere":
		return MoveScissors, true
	default:
		return 0, false
	}
}

// Beats reports whether m wins against other.
func (m Move) Beats(other Move) bool {
	switch m {
	case MoveRock:
		return other == MoveScissors
	case MovePaper:
		return other == MoveRock
	case MoveScissors:
		return other == MovePaper
	default:
		return false
	}
}

// Outcome is the result of a round from the player's perspective.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns the display name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "you win"
	case OutcomeLose:
		return "computer wins"
	default:
		return "draw"
	}
}

func decide(player, computer Move) Outcome {
	switch {
	case player == computer:
		return OutcomeDraw
	case player.Beats(computer):
		return OutcomeWin
	default:
		return OutcomeLose
	}
}

// Game tracks scores across rounds.
type Game struct {
	PlayerScore   int
	ComputerScore int
	Draws         int
	Rounds        int
}

// RoundResult describes one completed round.
type RoundResult struct {
	Player   Move
	Computer Move
	Outcome  Outcome
}

// Play runs one round against a uniformly random computer move.
func (g *Game) Play(player Move) RoundResult {
	computer := Move(rand.Intn(3))
	return g.playAgainst(player, computer)
}

func (g *Game) playAgainst(player, computer Move) RoundResult {
	outcome := decide(player, computer)
	g.Rounds++
	switch outcome {
	case OutcomeWin:
		g.PlayerScore++
	case OutcomeLose:
		g.ComputerScore++
	default:
		g.Draws++
	}
	return RoundResult{Player: player, Computer: computer, Outcome: outcome}
}

// WinRate returns the player's win percentage over all rounds.
func (g *Game) WinRate() float64 {
	if g.Rounds == 0 {
		return 0
	}
	return float64(g.PlayerScore) / float64(g.Rounds) * 100
}

// Art returns ASCII art for a move.
func Art(m Move) string {
	switch m {
	case MoveRock:
		return `    _______
---'   ____)
      (_____)
      (_____)
      (____)
---.__(___)`
	case MovePaper:
		return `    _______
---'   ____)____
          ______)
          _______)
         _______)
---.__________)`
	case MoveScissors:
		return `    _______
---'   ____)____
          ______)
       __________)
      (____)
---.__(___)`
	default:
		return ""
	}
}
