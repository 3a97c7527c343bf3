package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hbjs97/pushover-cli/internal/doctor"
	"github.com/hbjs97/pushover-cli/internal/shell"
)

func (a *App) newDoctorCmd() *cobra.Command {
	var shellName string
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose credential and shell profile setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.OutOrStdout(), shell.Name(shellName))
		},
	}
	cmd.Flags().StringVar(&shellName, "shell", "", "shell type (bash, zsh, fish); detected from $SHELL when empty")
	return cmd
}

func (a *App) runDoctor(out io.Writer, sh shell.Name) error {
	path, err := a.configPath()
	if err != nil {
		return fmt.Errorf("cli.doctor: %w", err)
	}
	results := doctor.RunAll(a.Env, a.shellManager(), sh, path)
	printDiagResults(out, results)
	if doctor.HasFailure(results) {
		return fmt.Errorf("cli.doctor: %w", ErrChecksFailed)
	}
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(out io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(out, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(out, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
