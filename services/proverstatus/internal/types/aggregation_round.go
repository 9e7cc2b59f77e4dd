package types

import "fmt"

// AggregationRound is a stage of recursive proof composition. The order of values is the order of execution.
type AggregationRound uint8

const (
	BasicCircuits AggregationRound = iota
	LeafAggregation
	NodeAggregation
	RecursionTip
	Scheduler

	AggregationRoundsCount = iota
)

var aggregationRoundNames = [AggregationRoundsCount]string{
	BasicCircuits:   "BasicCircuits",
	LeafAggregation: "LeafAggregation",
	NodeAggregation: "NodeAggregation",
	RecursionTip:    "RecursionTip",
	Scheduler:       "Scheduler",
}

func (r AggregationRound) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("AggregationRound(%d)", uint8(r))
	}
	return aggregationRoundNames[r]
}

func (r AggregationRound) IsValid() bool {
	return r < AggregationRoundsCount
}

// AllAggregationRounds returns every round in execution order.
func AllAggregationRounds() []AggregationRound {
	return []AggregationRound{BasicCircuits, LeafAggregation, NodeAggregation, RecursionTip, Scheduler}
}

// AggregationRoundFromInt converts the value of an `aggregation_round` column.
func AggregationRoundFromInt(value int64) (AggregationRound, error) {
	if value < 0 || value >= AggregationRoundsCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAggregationRound, value)
	}
	return AggregationRound(value), nil
}

// Stage is one of the six logical proving stages of a batch:
// the five aggregation rounds followed by compression.
type Stage uint8

const (
	StageBasicWitnessGenerator Stage = iota
	StageLeafWitnessGenerator
	StageNodeWitnessGenerator
	StageRecursionTip
	StageScheduler
	StageCompressor

	StagesCount = iota
)

var stageNames = [StagesCount]string{
	StageBasicWitnessGenerator: "Basic Witness Generator",
	StageLeafWitnessGenerator:  "Leaf Witness Generator",
	StageNodeWitnessGenerator:  "Node Witness Generator",
	StageRecursionTip:          "Recursion Tip",
	StageScheduler:             "Scheduler",
	StageCompressor:            "Compressor",
}

func (s Stage) String() string {
	if s >= StagesCount {
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
	return stageNames[s]
}

// AggregationRound returns the round the stage belongs to; false for the compression stage.
func (s Stage) AggregationRound() (AggregationRound, bool) {
	if s >= StageCompressor {
		return 0, false
	}
	return AggregationRound(s), true
}

func StageOf(round AggregationRound) Stage {
	return Stage(round)
}

func AllStages() []Stage {
	return []Stage{
		StageBasicWitnessGenerator,
		StageLeafWitnessGenerator,
		StageNodeWitnessGenerator,
		StageRecursionTip,
		StageScheduler,
		StageCompressor,
	}
}
