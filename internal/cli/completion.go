package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell
// completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for archplot.

The script is written to stdout. To load completions in the current
bash session:

  source <(archplot completion bash)

To install them permanently, write the script where your shell looks
for completions:

  # bash (Linux)
  archplot completion bash > /etc/bash_completion.d/archplot

  # bash (macOS, with bash-completion via brew)
  archplot completion bash > $(brew --prefix)/etc/bash_completion.d/archplot

  # zsh (compinit must be enabled)
  archplot completion zsh > "${fpath[1]}/_archplot"

  # fish
  archplot completion fish > ~/.config/fish/completions/archplot.fish

  # powershell (dot-source the file from your profile)
  archplot completion powershell > archplot.ps1
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
