package dto

// VersionDTO Server version response
// VersionDTO 服务端版本响应
type VersionDTO struct {
	Version   string `json:"version"`   // Software version // 软件版本
	GitTag    string `json:"gitTag"`    // Git tag // Git 标签
	BuildTime string `json:"buildTime"` // Build time // 构建时间
}
