package cron

import (
	"context"

	"backoffice/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger           *zap.Logger
	server           *cron.Cron
	couponService    *service.CouponService
	reconcileService *service.ReconcileService
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	couponService *service.CouponService,
	reconcileService *service.ReconcileService,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:           logger,
		server:           server,
		couponService:    couponService,
		reconcileService: reconcileService,
	}
}

func (c *Cron) Run() error {
	// 每小時整點：過期優惠券自動下架
	if _, err := c.server.AddFunc("0 0 * * * *", c.sweepExpiredCoupons); err != nil {
		return err
	}
	// 每天 04:30：全量對帳反向引用
	if _, err := c.server.AddFunc("0 30 4 * * *", c.reconcileReferences); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) sweepExpiredCoupons() {
	if _, err := c.couponService.DeactivateExpired(context.Background()); err != nil {
		c.logger.Error("expired coupon sweep failed", zap.Error(err))
	}
}

func (c *Cron) reconcileReferences() {
	if err := c.reconcileService.ReconcileAll(context.Background()); err != nil {
		c.logger.Error("reference reconcile failed", zap.Error(err))
	}
}
