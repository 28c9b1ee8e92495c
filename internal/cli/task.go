package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/domain"
	"github.com/runoshun/focus-pulse/internal/infra/ids"
	"github.com/runoshun/focus-pulse/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Steps []string
		AI    bool
	}

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new task",
		Long: `Create a new task, optionally with steps.

Each completed step earns 1 coin. Completing every step of a task
earns a bonus of 10 coins and 1 seed.

With --ai the title is broken down into small steps by Gemini
(needs GEMINI_API_KEY or [ai] api_key). Without a key, or when the
request fails, a generic set of steps is used instead.

Examples:
  # Create a task with two steps
  pulse new "Clean kitchen" --step "Clear counter" --step "Wash dishes"

  # Let AI suggest the steps
  pulse new "Write quarterly report" --ai`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title: strings.Join(args, " "),
				Steps: opts.Steps,
				UseAI: opts.AI,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Created task %s: %s\n", ids.Short(out.Task.ID), out.Task.Title)
			printSteps(w, out.Task)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.Steps, "step", nil, "Step text (can specify multiple)")
	cmd.Flags().BoolVar(&opts.AI, "ai", false, "Append AI-suggested steps")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var pending bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks, newest first.

Output format is tab-separated with columns:
  ID, STATE, DONE, TITLE

Examples:
  # List all tasks
  pulse list

  # Hide completed tasks
  pulse list --pending`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{HideCompleted: pending})
			if err != nil {
				return err
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pending, "pending", "p", false, "Hide completed tasks")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks. Create one with 'pulse new <title>'.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATE\tDONE\tTITLE")

	// Rows
	for _, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\n",
			ids.Short(task.ID),
			task.State().Display(),
			task.DoneCount(),
			len(task.Steps),
			task.Title,
		)
	}
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display a task and its numbered steps.

The step numbers can be passed to 'pulse toggle'.

Examples:
  pulse show 3f2a
  pulse show 3f2a --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			if asJSON {
				type jsonStep struct {
					ID        string `json:"id"`
					Text      string `json:"text"`
					Completed bool   `json:"completed"`
				}
				type jsonTask struct {
					Created   time.Time        `json:"created"`
					ID        string           `json:"id"`
					Title     string           `json:"title"`
					State     domain.TaskState `json:"state"`
					Steps     []jsonStep       `json:"steps"`
					Completed bool             `json:"completed"`
				}

				jt := jsonTask{
					Created:   out.Task.CreatedAt,
					ID:        out.Task.ID,
					Title:     out.Task.Title,
					State:     out.Task.State(),
					Completed: out.Task.Completed,
					Steps:     make([]jsonStep, len(out.Task.Steps)),
				}
				for i, s := range out.Task.Steps {
					jt.Steps[i] = jsonStep{ID: s.ID, Text: s.Text, Completed: s.Completed}
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(jt)
			}

			printTaskDetails(cmd.OutOrStdout(), out.Task)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// printTaskDetails prints a task header followed by its steps.
func printTaskDetails(w io.Writer, task *domain.Task) {
	_, _ = fmt.Fprintf(w, "%s %s\n", ids.Short(task.ID), task.Title)
	_, _ = fmt.Fprintf(w, "State:   %s (%d/%d)\n", task.State().Display(), task.DoneCount(), len(task.Steps))
	_, _ = fmt.Fprintf(w, "Created: %s\n", task.CreatedAt.Local().Format("2006-01-02 15:04"))
	if len(task.Steps) > 0 {
		_, _ = fmt.Fprintln(w)
		printSteps(w, task)
	}
}

// printSteps prints numbered steps with a check box.
func printSteps(w io.Writer, task *domain.Task) {
	for i, s := range task.Steps {
		box := "[ ]"
		if s.Completed {
			box = "[x]"
		}
		_, _ = fmt.Fprintf(w, "  %d. %s %s\n", i+1, box, s.Text)
	}
}

// newStepCommand creates the step command for adding a step to a task.
func newStepCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "step <task-id> <text>",
		Short: "Add a step to a task",
		Long: `Append an open step to a task.

Adding a step to a completed task puts it back in progress.
Rewards already earned are kept.

Examples:
  pulse step 3f2a "Take out trash"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddStepUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddStepInput{
				TaskID: args[0],
				Text:   strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added step %d to %s: %s\n",
				len(out.Task.Steps), ids.Short(out.Task.ID), out.Step.Text)
			return nil
		},
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id> <step>",
		Short: "Check or uncheck a step",
		Long: `Flip the completion of a step.

The step is given as its number from 'pulse show' or as a step ID prefix.
Checking a step earns 1 coin; checking the last open step also earns
the 10 coin and 1 seed bonus. Unchecking takes nothing back.

Examples:
  pulse toggle 3f2a 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ToggleStepUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ToggleStepInput{
				TaskID:  args[0],
				StepRef: args[1],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			verb := "Reopened"
			if out.Toggle.StepCompleted {
				verb = "Completed"
			}
			_, _ = fmt.Fprintf(w, "%s: %s\n", verb, out.Toggle.Step.Text)
			if out.Toggle.TaskCompleted {
				_, _ = fmt.Fprintf(w, "Task complete: %s\n", out.Task.Title)
			}
			if out.Ledger != nil {
				_, _ = fmt.Fprintf(w, "%s (balance: %d coins, %d seeds)\n",
					formatReward(out.Reward), out.Ledger.Coins, out.Ledger.Seeds)
			}
			return nil
		},
	}
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task and its steps.

Rewards already earned from the task are kept.

Examples:
  pulse rm 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s: %s\n", ids.Short(out.Task.ID), out.Task.Title)
			return nil
		},
	}
}

// newImportCommand creates the import command for bulk task creation.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a YAML file",
		Long: `Create several tasks at once from a YAML file.

The first task in the file ends up at the top of the list.

File format:
  - title: Clean kitchen
    steps:
      - Clear counter
      - Wash dishes
  - title: Pay rent

Examples:
  pulse import tasks.yaml
  pulse import tasks.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
				_, _ = fmt.Fprintln(w)
			}
			for i, task := range out.Tasks {
				if dryRun {
					_, _ = fmt.Fprintf(w, "Task %d: %s\n", i+1, task.Title)
				} else {
					_, _ = fmt.Fprintf(w, "Created task %s: %s\n", ids.Short(task.ID), task.Title)
				}
				printSteps(w, task)
			}
			if !dryRun {
				_, _ = fmt.Fprintf(w, "\nImported %d tasks\n", len(out.Tasks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview tasks without creating")

	return cmd
}

// formatReward renders a reward like "+11 coins +1 seed".
func formatReward(r domain.Reward) string {
	var parts []string
	if r.Coins > 0 {
		parts = append(parts, fmt.Sprintf("+%d %s", r.Coins, plural(r.Coins, "coin", "coins")))
	}
	if r.Seeds > 0 {
		parts = append(parts, fmt.Sprintf("+%d %s", r.Seeds, plural(r.Seeds, "seed", "seeds")))
	}
	return strings.Join(parts, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
