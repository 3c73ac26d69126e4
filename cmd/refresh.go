package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dafoma/lingualearn/internal/remote"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the catalog from the content service",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		client := remote.NewClient(remote.DefaultConfig())

		courses, err := client.FetchCourses(ctx)
		if err != nil {
			return fmt.Errorf("fetch courses: %w", err)
		}
		if err := svc.ReplaceCourses(ctx, courses); err != nil {
			return fmt.Errorf("save courses: %w", err)
		}

		skills, err := client.FetchSkills(ctx)
		if err != nil {
			return fmt.Errorf("fetch skills: %w", err)
		}
		if err := svc.ReplaceSkills(ctx, skills); err != nil {
			return fmt.Errorf("save skills: %w", err)
		}

		challenges, err := client.FetchChallenges(ctx)
		if err != nil {
			return fmt.Errorf("fetch challenges: %w", err)
		}
		if err := svc.ReplaceChallenges(ctx, challenges); err != nil {
			return fmt.Errorf("save challenges: %w", err)
		}

		fmt.Printf("Catalog refreshed: %d courses, %d skills, %d challenges\n",
			len(courses), len(skills), len(challenges))
		return nil
	},
}
