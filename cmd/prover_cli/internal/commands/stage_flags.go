package commands

import (
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"github.com/spf13/cobra"
)

type stageFlag struct {
	name  string
	stage public.Stage
}

var stageFlags = []stageFlag{
	{name: "bwg", stage: public.StageBasicWitnessGenerator},
	{name: "lwg", stage: public.StageLeafWitnessGenerator},
	{name: "nwg", stage: public.StageNodeWitnessGenerator},
	{name: "rt", stage: public.StageRecursionTip},
	{name: "scheduler", stage: public.StageScheduler},
	{name: "compressor", stage: public.StageCompressor},
}

// StageSelection collects stage flags; no flag set means every stage is shown.
type StageSelection struct {
	selected []bool
}

func (s *StageSelection) bind(cmd *cobra.Command) {
	s.selected = make([]bool, len(stageFlags))
	for i, flag := range stageFlags {
		cmd.Flags().BoolVar(&s.selected[i], flag.name, false, "show the "+flag.stage.String()+" stage")
	}
}

func (s *StageSelection) Mask() public.StageMask {
	stages := make([]public.Stage, 0, len(s.selected))
	for i, selected := range s.selected {
		if selected {
			stages = append(stages, stageFlags[i].stage)
		}
	}
	return public.NewStageMask(stages...).OrAll()
}
