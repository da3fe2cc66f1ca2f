package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/quillback/intake/internal/config"
	"github.com/quillback/intake/internal/session"
	"github.com/quillback/intake/internal/task"
	"github.com/quillback/intake/internal/transcript"
	"github.com/quillback/intake/internal/tui"
)

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func Usage() string {
	return `intake: conversational intake session tooling

Usage:
  intake init
  intake detect <filename-or-url> [...]
  intake show <session.json>
  intake transcript <transcript.jsonl>
  intake render <task.json>
  intake view <session.json>

init prints a freshly minted intake id and its session folder.
render validates a task output record and writes the task document to stdout.
view opens a read-only session browser.
`
}

func Run(args []string) error {
	if len(args) == 0 {
		return UsageError{Message: "missing command"}
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, Usage())
		return nil
	case "init":
		if len(args) != 1 {
			return UsageError{Message: "init takes no arguments"}
		}
		return runInit(os.Stdout)
	case "detect":
		if len(args) < 2 {
			return UsageError{Message: "detect requires at least 1 argument: <filename-or-url>"}
		}
		return runDetect(os.Stdout, args[1:])
	case "show":
		if len(args) != 2 {
			return UsageError{Message: "show requires exactly 1 argument: <session.json>"}
		}
		return runShow(os.Stdout, args[1])
	case "transcript":
		if len(args) != 2 {
			return UsageError{Message: "transcript requires exactly 1 argument: <transcript.jsonl>"}
		}
		return runTranscript(os.Stdout, args[1])
	case "render":
		if len(args) != 2 {
			return UsageError{Message: "render requires exactly 1 argument: <task.json>"}
		}
		return runRender(os.Stdout, args[1])
	case "view":
		if len(args) != 2 {
			return UsageError{Message: "view requires exactly 1 argument: <session.json>"}
		}
		return runView(args[1])
	default:
		return UsageError{Message: fmt.Sprintf("unknown command: %q", args[0])}
	}
}

func runInit(w io.Writer) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	id, err := session.GenerateIntakeID()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Intake ID:\t%s\n", id)
	fmt.Fprintf(tw, "Session dir:\t%s\n", session.SessionDir(cfg.DataRoot, id))
	fmt.Fprintf(tw, "Snapshot:\t%s\n", session.SnapshotPath(cfg.DataRoot, id))
	fmt.Fprintf(tw, "Transcript:\t%s\n", session.TranscriptPath(cfg.DataRoot, id))
	return tw.Flush()
}

func runDetect(w io.Writer, names []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, session.DetectDocumentFormat(name))
	}
	return tw.Flush()
}

func runShow(w io.Writer, path string) error {
	s, err := session.Load(path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Intake ID:\t%s\n", s.Metadata.IntakeID)
	fmt.Fprintf(tw, "State:\t%s\n", s.Metadata.State)
	fmt.Fprintf(tw, "Created:\t%s\n", s.Metadata.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(tw, "Updated:\t%s\n", s.Metadata.UpdatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(tw, "Turns:\t%d\n", s.Metadata.TotalTurns)
	fmt.Fprintf(tw, "Documents:\t%d\n", s.Documents.TotalDocuments)
	fmt.Fprintf(tw, "Highlights:\t%d\n", len(s.Highlights))
	if s.WorkingTitle != "" {
		fmt.Fprintf(tw, "Working title:\t%s\n", s.WorkingTitle)
	}
	if s.WorkingThesis != "" {
		fmt.Fprintf(tw, "Working thesis:\t%s\n", s.WorkingThesis)
	}
	if s.Objective != "" {
		fmt.Fprintf(tw, "Objective:\t%s\n", s.Objective)
	}
	if s.TimeHorizon != "" {
		fmt.Fprintf(tw, "Time horizon:\t%s\n", s.TimeHorizon)
	}
	if s.RiskAppetite != "" {
		fmt.Fprintf(tw, "Risk appetite:\t%s\n", s.RiskAppetite)
	}
	fmt.Fprintf(tw, "Kill criteria:\t%d\n", len(s.KillCriteria))
	fmt.Fprintf(tw, "Constraints:\t%d\n", len(s.Constraints))
	fmt.Fprintf(tw, "Key questions:\t%d\n", len(s.KeyQuestions))
	return tw.Flush()
}

func runTranscript(w io.Writer, path string) error {
	turns, err := transcript.Read(path)
	if err != nil {
		return err
	}

	for _, turn := range turns {
		content := turn.Content
		if len(content) > 80 {
			content = content[:77] + "..."
		}
		content = strings.ReplaceAll(content, "\n", " ")
		fmt.Fprintf(w, "%3d %s [%s/%s] %s\n",
			turn.TurnID,
			turn.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			turn.Role,
			turn.Phase,
			content,
		)
	}
	return nil
}

func runRender(w io.Writer, path string) error {
	out, err := task.LoadOutput(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out.Markdown())
	return err
}

func runView(path string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	s, err := session.Load(path)
	if err != nil {
		return err
	}
	return tui.Start(s, cfg.TUI.PreviewWrapColumn)
}
