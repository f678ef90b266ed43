package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/csheth/pathscout/internal/catalog"
	"github.com/csheth/pathscout/internal/curriculum"
)

func progressTickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return progressTickMsg{gen: gen}
	})
}

func progressDoneCmd(gen uint64, grace time.Duration) tea.Cmd {
	if grace <= 0 {
		return func() tea.Msg { return progressDoneMsg{gen: gen} }
	}
	return tea.Tick(grace, func(time.Time) tea.Msg {
		return progressDoneMsg{gen: gen}
	})
}

func toastExpireCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func exportJob(exporter Exporter, epoch int, topic string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		path, err := exporter.Export(ctx, topic)
		return exportResultMsg{epoch: epoch, path: path, err: err}, err
	}
}

func coursesJob(courses *catalog.Catalog, epoch int, topic string, level curriculum.SkillLevel, limit int) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if err := ctx.Err(); err != nil {
			return coursesResultMsg{epoch: epoch}, err
		}
		recs := courses.Recommend(topic, string(level), limit)
		return coursesResultMsg{epoch: epoch, recommendations: recs}, nil
	}
}

func markdownJob(style string, width, epoch int, document string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if err := ctx.Err(); err != nil {
			return markdownResultMsg{epoch: epoch, width: width}, err
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			err = fmt.Errorf("markdown renderer: %w", err)
			return markdownResultMsg{epoch: epoch, width: width, err: err}, err
		}
		rendered, err := renderer.Render(document)
		if err != nil {
			err = fmt.Errorf("render markdown: %w", err)
		}
		return markdownResultMsg{epoch: epoch, width: width, rendered: rendered, err: err}, err
	}
}
