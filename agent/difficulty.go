package agent

import (
	"fmt"
	"othello/meta"
	"strings"
)

// Difficulty only changes the search depth.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return meta.EASY_DEPTH
	case Hard:
		return meta.HARD_DEPTH
	default:
		return meta.MEDIUM_DEPTH
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}
