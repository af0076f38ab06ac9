package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"backoffice/config"
	"backoffice/internal/dto"
	cErr "backoffice/internal/pkg/error"
	"backoffice/internal/telemetry"
)

// UploadService 簽發 Cloudinary 直傳簽名，後端不經手檔案本體
type UploadService struct {
	conf  *config.Configuration
	trace *telemetry.Trace
}

func NewUploadService(conf *config.Configuration, trace *telemetry.Trace) *UploadService {
	return &UploadService{conf: conf, trace: trace}
}

func (s *UploadService) SignUpload(ctx context.Context) (_ *dto.SignUploadResponseDto, returnedError error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	cloudinary := s.conf.Cloudinary
	if cloudinary.APISecret == "" {
		return nil, cErr.ServiceUnavailable("upload signing is not configured")
	}

	timestamp := time.Now().UTC().Unix()
	params := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
	}
	if cloudinary.Folder != "" {
		params["folder"] = cloudinary.Folder
	}

	return &dto.SignUploadResponseDto{
		Timestamp: timestamp,
		Folder:    cloudinary.Folder,
		Signature: signParams(params, cloudinary.APISecret),
		APIKey:    cloudinary.APIKey,
		CloudName: cloudinary.CloudName,
	}, nil
}

// signParams 依 Cloudinary 規則：參數按 key 排序串成 query string，
// 尾端接上 api secret 後取 SHA-1。
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}
	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(digest[:])
}
