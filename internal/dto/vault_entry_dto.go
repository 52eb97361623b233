package dto

import "github.com/wilove/vaulten-sync-service/pkg/timex"

// EntryCreateRequest Create vault entry request parameters
// 创建保险库条目请求参数
// Owner is never client-supplied; it comes from the authenticated principal
// 所有者永远不由客户端提供，而是来自已认证主体
type EntryCreateRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`            // Entry name // 条目名称
	Username string `json:"username" form:"username"`                       // Account username // 账号用户名
	Password string `json:"password" form:"password"`                       // Secret, plaintext on the wire // 敏感字段，传输为明文
	URL      string `json:"url" form:"url"`                                 // Related URL // 关联地址
	Notes    string `json:"notes" form:"notes"`                             // Secret notes // 敏感备注
	Type     string `json:"type" form:"type" binding:"omitempty,entrytype"` // login|note|card|identity
	Category string `json:"category" form:"category"`                       // Free-form category // 自由分类
}

// EntryUpdateRequest Update vault entry request parameters
// 更新保险库条目请求参数，全量替换可变字段
type EntryUpdateRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`            // Entry name // 条目名称
	Username string `json:"username" form:"username"`                       // Account username // 账号用户名
	Password string `json:"password" form:"password"`                       // Secret, plaintext on the wire // 敏感字段，传输为明文
	URL      string `json:"url" form:"url"`                                 // Related URL // 关联地址
	Notes    string `json:"notes" form:"notes"`                             // Secret notes // 敏感备注
	Type     string `json:"type" form:"type" binding:"omitempty,entrytype"` // login|note|card|identity
	Category string `json:"category" form:"category"`                       // Free-form category // 自由分类
}

// EntrySyncRequest Incremental sync request parameters
// 增量同步请求参数
type EntrySyncRequest struct {
	Since int64 `json:"since" form:"since"` // Last sync watermark, unix ms // 上次同步水位，毫秒时间戳
}

// ---------------- DTO / Response ----------------

// EntryDTO Vault entry data transfer object, secret fields in plaintext
// EntryDTO 保险库条目数据传输对象，敏感字段为明文
type EntryDTO struct {
	ID               int64      `json:"id"`               // Entry ID // 条目唯一标识
	UID              int64      `json:"uid"`              // Owner UID // 所有者
	Name             string     `json:"name"`             // Entry name // 条目名称
	Username         string     `json:"username"`         // Account username // 账号用户名
	Password         string     `json:"password"`         // Secret, plaintext // 敏感字段，明文
	URL              string     `json:"url"`              // Related URL // 关联地址
	Notes            string     `json:"notes"`            // Secret notes // 敏感备注
	Type             string     `json:"type"`             // Entry type // 条目类型
	Category         string     `json:"category"`         // Category // 分类
	UpdatedTimestamp int64      `json:"updatedTimestamp"` // Last modified, unix ms // 最后修改毫秒时间戳
	UpdatedAt        timex.Time `json:"updatedAt"`        // Last updated time // 最后更新时间
	CreatedAt        timex.Time `json:"createdAt"`        // Created time // 创建时间
}

// EntrySyncDTO Incremental sync response
// EntrySyncDTO 增量同步响应
// ServerTime is captured before the delta query so nothing is skipped
// ServerTime 在增量查询之前采集，保证不漏记录
type EntrySyncDTO struct {
	UpdatedEntries []*EntryDTO `json:"updatedEntries"` // Entries modified after since // since 之后修改的条目
	ServerTime     int64       `json:"serverTime"`     // Next sync watermark, unix ms // 下次同步水位，毫秒时间戳
}
