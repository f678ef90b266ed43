package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/pathscout/internal/curriculum"
)

func (a *app) newCourseCmd() *cobra.Command {
	var recommend bool
	var level string
	cmd := &cobra.Command{
		Use:   "course [id | topic]",
		Short: "Show a course from the catalog",
		Long: `Looks a course up by id. Unknown ids print a placeholder course.

With --recommend the argument is a topic and the best matching courses
are listed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			arg := strings.TrimSpace(args[0])
			if recommend {
				recs := a.catalog.Recommend(arg, level, a.cfg.UI.RecommendLimit)
				for i, rec := range recs {
					fmt.Fprintf(out, "%d) #%s %s  (%.1f, %s, score %.2f)\n", i+1, rec.ID, rec.Title, rec.Rating, rec.Difficulty, rec.Score)
				}
				return nil
			}

			detail := a.catalog.Lookup(arg)
			a.logger.Info("course lookup", zap.String("id", arg), zap.Bool("placeholder", detail.Placeholder))
			fmt.Fprintf(out, "#%s %s\n", detail.ID, detail.Title)
			if detail.Placeholder {
				fmt.Fprintln(out, "This course is not in the catalog yet.")
				return nil
			}
			fmt.Fprintf(out, "Rating: %.1f\nDifficulty: %s\nInstructor: %s\nSkills: %s\n\n%s\n",
				detail.Rating, detail.Difficulty, detail.Instructor, strings.Join(detail.Skills, ", "), detail.Description)
			return nil
		},
	}
	cmd.Flags().BoolVar(&recommend, "recommend", false, "treat the argument as a topic and list matching courses")
	cmd.Flags().StringVar(&level, "level", "", "skill level used with --recommend")
	return cmd
}

func (a *app) newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the suggested topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, topic := range curriculum.Topics {
				marker := " "
				if curriculum.HasRoadmap(topic) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, topic)
			}
			fmt.Fprintln(out, "\n* has a curated roadmap")
			return nil
		},
	}
}
