package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/pathscout/internal/curriculum"
	"github.com/csheth/pathscout/internal/guide"
	"github.com/csheth/pathscout/internal/workflow"
)

type generateOptions struct {
	topic      string
	level      string
	ai         bool
	noProgress bool
	markdown   bool
	style      string
	export     bool
}

func (a *app) newGenerateCmd() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a learning path without the interactive interface",
		Long: `Runs the same intake, progress and templating steps as the interactive
interface and prints the resulting roadmap.

Example:
  pathscout generate --topic "Web Development" --level beginner --markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return a.runGenerate(ctx, cmd.OutOrStdout(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.topic, "topic", "t", "", "what you want to learn")
	flags.StringVarP(&opts.level, "level", "l", "", "skill level: beginner, intermediate or advanced")
	flags.BoolVar(&opts.ai, "ai", false, "request AI-enhanced recommendations")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "skip the simulated progress stage")
	flags.BoolVar(&opts.markdown, "markdown", false, "render the roadmap as markdown")
	flags.StringVar(&opts.style, "style", "dark", "glamour style for --markdown: dark, light or notty")
	flags.BoolVar(&opts.export, "export", false, "also write the roadmap file into the download directory")
	return cmd
}

func (a *app) runGenerate(ctx context.Context, out io.Writer, opts generateOptions) error {
	session := workflow.NewSession(workflow.WithLogger(a.logger), workflow.WithTiming(a.cfg.Timing()))
	req, note, err := session.Submit(opts.topic, opts.level, opts.ai)
	if err != nil {
		if errors.Is(err, workflow.ErrIncompleteIntake) {
			return fmt.Errorf("%s: %w", note.Message, err)
		}
		return err
	}
	fmt.Fprintln(out, note.Message)

	gen := session.Progress().Generation()
	if opts.noProgress {
		for session.Progress().Running() {
			session.Progress().Tick(gen)
		}
	} else if err := a.waitForProgress(ctx, out, session.Progress(), gen); err != nil {
		session.Reset()
		return err
	}

	note, ok := session.Complete(gen)
	if !ok {
		return errors.New("learning path did not complete")
	}
	fmt.Fprintln(out, note.Message)
	fmt.Fprintln(out)

	result, _ := session.Result()
	if opts.markdown {
		if err := writeMarkdown(out, opts.style, curriculum.Markdown(result, req.Topic, req.SkillLevel)); err != nil {
			return err
		}
	} else {
		writePlain(out, req, result)
	}

	if opts.export {
		path, err := a.exporter().Export(ctx, req.Topic)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintln(out, "Roadmap downloaded:", path)
	}
	return nil
}

// waitForProgress runs p on a Timer, drawing a bar on out, and returns once
// the run completes or ctx is cancelled.
func (a *app) waitForProgress(ctx context.Context, out io.Writer, p *workflow.Progress, gen uint64) error {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	completed := make(chan struct{}, 1)

	timer := workflow.NewTimer(a.cfg.Timing())
	timer.OnTick = func(percent float64) {
		fmt.Fprintf(out, "\r%s", bar.ViewAs(percent/100))
	}
	timer.OnComplete = func(uint64) {
		completed <- struct{}{}
	}
	timer.Start(ctx, p, gen)

	select {
	case <-completed:
		timer.Wait()
		fmt.Fprintln(out)
		return nil
	case <-ctx.Done():
		timer.Cancel()
		fmt.Fprintln(out)
		a.logger.Info("generation cancelled", zap.Uint64("generation", gen))
		return ctx.Err()
	}
}

func writeMarkdown(out io.Writer, style, document string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(document)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

func writePlain(out io.Writer, req workflow.IntakeRequest, result curriculum.Result) {
	fmt.Fprintf(out, "Learning path: %s (%s)\n", req.Topic, req.SkillLevel.Title())
	for i, node := range result.LearningPath {
		fmt.Fprintf(out, "%d. %s", i+1, node.Label)
		if node.Duration != "" {
			fmt.Fprintf(out, " (%s)", node.Duration)
		}
		fmt.Fprintln(out)
		curriculum.Walk(node.Children, func(child curriculum.Node, depth int) bool {
			fmt.Fprintf(out, "%s- %s\n", strings.Repeat("   ", depth+1), child.Label)
			return true
		})
	}

	fmt.Fprintln(out, "\nRoadmap phases:")
	for i, node := range result.Detailed.Phases {
		fmt.Fprintf(out, "%d. %s - %s\n", i+1, node.Label, node.Duration)
	}

	fmt.Fprintln(out, "\nProjects:")
	for _, project := range append(append([]curriculum.Project(nil), result.Projects...), result.Detailed.Projects...) {
		fmt.Fprintf(out, "- %s [%s, %s]\n", project.Name, project.Complexity, project.EstimatedDuration)
	}

	fmt.Fprintln(out, "\nResources:")
	for _, category := range result.Resources.Categories() {
		if len(category.Items) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", category.Title, strings.Join(category.Items, "; "))
	}

	fmt.Fprintln(out, "\nCareer opportunities:")
	for _, career := range result.Careers {
		fmt.Fprintf(out, "- %s\n", career)
	}

	fmt.Fprintln(out, "\nStudy guide:")
	steps := guide.Build(guide.Metadata{
		Topic:      req.Topic,
		SkillLevel: string(req.SkillLevel),
		Phases:     len(result.Detailed.Phases),
	})
	for i, step := range steps {
		fmt.Fprintf(out, "%d. %s: %s\n", i+1, step.Title, step.Description)
	}
}
