package public

// StageMask selects the stages to be displayed.
type StageMask uint8

func NewStageMask(stages ...Stage) StageMask {
	var mask StageMask
	for _, stage := range stages {
		mask |= 1 << stage
	}
	return mask
}

// AllStagesMask selects every stage.
func AllStagesMask() StageMask {
	return NewStageMask(AllStages()...)
}

func (m StageMask) Has(stage Stage) bool {
	return m&(1<<stage) != 0
}

func (m StageMask) IsEmpty() bool {
	return m == 0
}

// OrAll returns the mask itself or, if nothing is selected, the mask of all stages.
func (m StageMask) OrAll() StageMask {
	if m.IsEmpty() {
		return AllStagesMask()
	}
	return m
}
