package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cligui-go/internal/application/session"
	"github.com/doeshing/cligui-go/internal/domain"
	"github.com/doeshing/cligui-go/internal/infrastructure/cli/commands"
)

func newExecCommand(containerFn commands.ContainerFunc) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "exec [line...]",
		Short: "Interpret one line, or every stdin line, and print the output",
		Example: "  cligui exec cli-gui cats --country usa --sortBy DESC\n" +
			"  printf 'cli-gui -v\\ncli-gui -l\\n' | cligui exec",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := containerFn(cmd.Context())
			if err != nil {
				return err
			}
			s, err := c.NewSession(session.Options{SkipGreeting: true})
			if err != nil {
				return err
			}

			renderer := NewPlainRenderer()
			if color {
				renderer = NewStyledRenderer(DefaultStyles())
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				printFragment(out, renderer, s.Submit(strings.Join(args, " ")))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				printFragment(out, renderer, s.Submit(scanner.Text()))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		},
	}

	// Everything after the first positional token belongs to the emulated line.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&color, "color", false, "Style errors and highlighted tokens")
	return cmd
}

func printFragment(out io.Writer, renderer *Renderer, f domain.Fragment) {
	if f.Empty() {
		return
	}
	fmt.Fprintln(out, renderer.Fragment(f))
}
