package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dafoma/lingualearn/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prog := svc.Progress()
		fmt.Printf("Level:              %d\n", prog.Level())
		fmt.Printf("Total points:       %d\n", prog.TotalPoints)
		fmt.Printf("Current streak:     %d days\n", prog.CurrentStreak)
		fmt.Printf("Study time:         %s\n", catalog.FormatDuration(prog.StudyTimeMinutes))
		fmt.Printf("Courses completed:  %d of %d\n", len(prog.CompletedCourses), len(svc.Courses()))
		fmt.Printf("Skills completed:   %d of %d\n", len(prog.CompletedSkills), len(svc.Skills()))
		fmt.Printf("Challenges played:  %d of %d\n", len(prog.ChallengeScores), len(svc.Challenges()))
		return nil
	},
}
