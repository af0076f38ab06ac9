package repository

import (
	"context"
	"encoding/json"
	"time"

	"backoffice/config"
	"backoffice/internal/core"
	"backoffice/internal/database/client"
	"backoffice/internal/database/fluentd/model"
)

// LogRepository 統一負責發送 Response/Audit Log 到 Fluentd
type LogRepository struct {
	fluentdClient *client.FluentdClient
	version       string
}

func NewLogRepository(config *config.Configuration, client *client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version}
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if repository.fluentdClient == nil {
		return nil
	}
	if resp.LoggedAt == "" {
		resp.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	b, _ := json.Marshal(resp)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	err := repository.fluentdClient.Post(ctx, string(core.FluentdResponse), fluentdMessage)
	return err
}

func (repository *LogRepository) LogAudit(ctx context.Context, audit model.AuditLog) error {
	if repository.fluentdClient == nil {
		return nil
	}
	if audit.LoggedAt == "" {
		audit.LoggedAt = time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC")
	}
	if audit.Version == "" {
		audit.Version = repository.version
	}
	b, _ := json.Marshal(audit)
	var fluentdMessage map[string]any
	_ = json.Unmarshal(b, &fluentdMessage)
	err := repository.fluentdClient.Post(ctx, string(core.FluentdAudit), fluentdMessage)
	return err
}
