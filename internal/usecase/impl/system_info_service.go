package impl

import (
	"context"
	"runtime/debug"
	"time"

	"ucsbapi/config"
	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/usecase"
)

type systemInfoService struct {
	info entity.SystemInfo
}

// NewSystemInfoService captures the build revision and start time once.
func NewSystemInfoService(cfg *config.Config) usecase.SystemInfoUsecase {
	return &systemInfoService{
		info: entity.SystemInfo{
			ServiceName:       cfg.Env.ServiceName,
			Env:               cfg.Env.Env,
			ShowSwaggerUILink: cfg.SystemInfo.ShowSwaggerUILink,
			SourceRepo:        cfg.SystemInfo.SourceRepo,
			CommitID:          commitID(debug.ReadBuildInfo),
			StartedAt:         time.Now().UTC(),
		},
	}
}

func (srv *systemInfoService) Get(_ context.Context) *entity.SystemInfo {
	info := srv.info

	return &info
}

// commitID returns the vcs.revision stamped by the go tool, or "unknown".
func commitID(readBuildInfo func() (*debug.BuildInfo, bool)) string {
	bi, ok := readBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}

	return "unknown"
}
