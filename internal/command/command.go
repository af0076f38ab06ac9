package command

import (
	commandHandler "backoffice/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewReconcileHandler)

type Command struct {
	reconcileCommandHandler *commandHandler.ReconcileHandler
}

// NewCommand .
func NewCommand(
	reconcileCommandHandler *commandHandler.ReconcileHandler,
) *Command {
	return &Command{
		reconcileCommandHandler: reconcileCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "reconcile",
			Short: "rebuild denormalized reference arrays for all stores",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.reconcileCommandHandler.Run(cmd, args)
			},
		},
	)
}
