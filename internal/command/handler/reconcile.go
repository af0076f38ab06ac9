package command

import (
	"context"

	"backoffice/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ReconcileHandler struct {
	logger           *zap.Logger
	reconcileService *service.ReconcileService
}

func NewReconcileHandler(
	logger *zap.Logger,
	reconcileService *service.ReconcileService,
) *ReconcileHandler {
	return &ReconcileHandler{
		logger:           logger,
		reconcileService: reconcileService,
	}
}

// Run 全量重建所有 store 的反向引用陣列，收斂到與正向引用一致
func (handler *ReconcileHandler) Run(cmd *cobra.Command, args []string) {
	cmd.Println("reconciling reference arrays for all stores ...")
	if err := handler.reconcileService.ReconcileAll(context.Background()); err != nil {
		handler.logger.Error("reconcile failed", zap.Error(err))
		cmd.PrintErrln("reconcile failed:", err.Error())
		return
	}
	cmd.Println("reconcile completed")
}
