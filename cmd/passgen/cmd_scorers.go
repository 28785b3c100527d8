package main

import (
	"slices"

	"github.com/spboyer/passgen/internal/scoring"
	"github.com/spf13/cobra"
)

var scorerDescriptions = map[scoring.Type]string{
	scoring.TypeSwitchHand:      "Favors switching hands between consecutive letters",
	scoring.TypeSwitchFinger:    "Favors switching fingers between consecutive letters",
	scoring.TypeSimilarOneApart: "Penalizes letters that repeat one position apart",
	scoring.TypePinkyDisfavor:   "Penalizes letters typed with a pinky",
	scoring.TypeDoubleLetters:   "Penalizes doubled letters (param: single_double_score)",
}

func newScorersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scorers",
		Short: "List the available scorers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := [][]string{{"SCORER", "DEFAULT", "DESCRIPTION"}}
			for _, t := range scoring.Types {
				def := ""
				if slices.Contains(scoring.DefaultTypes, t) {
					def = "yes"
				}
				rows = append(rows, []string{string(t), def, scorerDescriptions[t]})
			}
			printTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}
