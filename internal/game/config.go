package game

import "fmt"

// RerollPolicy selects which food slots move when a round ends.
type RerollPolicy string

const (
	// RerollLegacy moves only the normal food and the first negative food.
	// The other slots keep their positions across rounds.
	RerollLegacy RerollPolicy = "legacy"
	// RerollAll moves every food slot.
	RerollAll RerollPolicy = "all"
)

// Slots returns the slots this policy re-rolls, in evaluation order.
func (p RerollPolicy) Slots() []int {
	switch p {
	case RerollAll:
		return []int{SlotNormal, SlotNegative1, SlotNegative2, SlotShrink, SlotGrowth}
	default:
		return []int{SlotNormal, SlotNegative1}
	}
}

// ParseRerollPolicy validates a policy name.
func ParseRerollPolicy(s string) (RerollPolicy, error) {
	switch RerollPolicy(s) {
	case RerollLegacy, RerollAll:
		return RerollPolicy(s), nil
	case "":
		return RerollLegacy, nil
	default:
		return "", fmt.Errorf("game: unknown reroll policy %q (want legacy or all)", s)
	}
}

// Config holds the simulation parameters.
type Config struct {
	GridSize        int
	NegativePenalty int
	SpawnAttempts   int
	GameOverReroll  RerollPolicy
}

// DefaultConfig returns the classic 25x25 setup.
func DefaultConfig() Config {
	return Config{
		GridSize:        25,
		NegativePenalty: 1,
		SpawnAttempts:   1000,
		GameOverReroll:  RerollLegacy,
	}
}
