package service

import (
	"context"
	"errors"

	"github.com/wilove/vaulten-sync-service/internal/domain"
	"github.com/wilove/vaulten-sync-service/internal/dto"
	"github.com/wilove/vaulten-sync-service/pkg/cipher"
	"github.com/wilove/vaulten-sync-service/pkg/code"
	"github.com/wilove/vaulten-sync-service/pkg/logger"
	"github.com/wilove/vaulten-sync-service/pkg/timex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VaultService 定义保险库业务服务接口
// 所有操作都以显式的 uid 为准，服务内部不持有当前用户状态
type VaultService interface {
	// Create 创建条目，所有者强制为 uid
	Create(ctx context.Context, uid int64, params *dto.EntryCreateRequest) (*dto.EntryDTO, error)

	// List 获取用户的全部条目（解密后）
	List(ctx context.Context, uid int64) ([]*dto.EntryDTO, error)

	// SyncSince 增量同步，返回 since 之后修改的条目和新的服务器水位
	SyncSince(ctx context.Context, uid int64, since int64) (*dto.EntrySyncDTO, error)

	// Get 获取单个条目（解密后）
	Get(ctx context.Context, id, uid int64) (*dto.EntryDTO, error)

	// Update 全量替换可变字段
	Update(ctx context.Context, id, uid int64, params *dto.EntryUpdateRequest) (*dto.EntryDTO, error)

	// Delete 物理删除条目
	Delete(ctx context.Context, id, uid int64) error
}

// vaultService 实现 VaultService 接口
type vaultService struct {
	entryRepo domain.EntryRepository
	cipher    *cipher.Cipher
	logger    *zap.Logger
}

var _ VaultService = (*vaultService)(nil)

// NewVaultService 创建 VaultService 实例
func NewVaultService(entryRepo domain.EntryRepository, c *cipher.Cipher, logger *zap.Logger) VaultService {
	return &vaultService{
		entryRepo: entryRepo,
		cipher:    c,
		logger:    logger,
	}
}

// sealEntry 加密条目的敏感字段
func (s *vaultService) sealEntry(entry *domain.VaultEntry) error {
	for _, field := range entry.EncryptedFields() {
		sealed, err := s.cipher.Seal(*field)
		if err != nil {
			return err
		}
		*field = sealed
	}
	return nil
}

// openEntry 解密条目的敏感字段
func (s *vaultService) openEntry(entry *domain.VaultEntry) error {
	for _, field := range entry.EncryptedFields() {
		opened, err := s.cipher.Open(*field)
		if err != nil {
			return err
		}
		*field = opened
	}
	return nil
}

// getOwned 获取条目并执行所有权检查
// Get/Update/Delete 共用，避免每个端点重复比较
func (s *vaultService) getOwned(ctx context.Context, repo domain.EntryRepository, id, uid int64) (*domain.VaultEntry, error) {
	entry, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVaultEntryNotFound
		}
		return nil, code.ErrorDBQuery
	}
	if !entry.IsOwnedBy(uid) {
		return nil, code.ErrorVaultAccessDenied
	}
	return entry, nil
}

// domainToDTO 将领域模型转换为 DTO
func (s *vaultService) domainToDTO(entry *domain.VaultEntry) *dto.EntryDTO {
	if entry == nil {
		return nil
	}
	return &dto.EntryDTO{
		ID:               entry.ID,
		UID:              entry.UID,
		Name:             entry.Name,
		Username:         entry.Username,
		Password:         entry.Password,
		URL:              entry.URL,
		Notes:            entry.Notes,
		Type:             entry.Type,
		Category:         entry.Category,
		UpdatedTimestamp: entry.UpdatedTimestamp,
		UpdatedAt:        timex.Time(entry.UpdatedAt),
		CreatedAt:        timex.Time(entry.CreatedAt),
	}
}

// openToDTO 解密后转换为 DTO
func (s *vaultService) openToDTO(entry *domain.VaultEntry) (*dto.EntryDTO, error) {
	if err := s.openEntry(entry); err != nil {
		s.logger.Error("vault entry decrypt failed",
			zap.Int64(logger.FieldEntryID, entry.ID),
			zap.Error(err))
		return nil, code.ErrorVaultCrypto
	}
	return s.domainToDTO(entry), nil
}

// Create 创建条目
func (s *vaultService) Create(ctx context.Context, uid int64, params *dto.EntryCreateRequest) (*dto.EntryDTO, error) {
	entryType := params.Type
	if entryType == "" {
		entryType = domain.EntryTypeLogin
	}

	entry := &domain.VaultEntry{
		UID:      uid,
		Name:     params.Name,
		Username: params.Username,
		Password: params.Password,
		URL:      params.URL,
		Notes:    params.Notes,
		Type:     entryType,
		Category: params.Category,
	}

	if err := s.sealEntry(entry); err != nil {
		return nil, code.ErrorVaultCrypto
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return nil, code.ErrorVaultEntryCreate.WithDetails(err.Error())
	}

	// 返回调用方的明文视图，附带仓储分配的 ID 和时间戳
	out := s.domainToDTO(created)
	out.Password = params.Password
	out.Notes = params.Notes
	return out, nil
}

// List 获取用户的全部条目
func (s *vaultService) List(ctx context.Context, uid int64) ([]*dto.EntryDTO, error) {
	entries, err := s.entryRepo.ListByUID(ctx, uid)
	if err != nil {
		return nil, code.ErrorVaultEntryList.WithDetails(err.Error())
	}

	list := make([]*dto.EntryDTO, 0, len(entries))
	for _, entry := range entries {
		item, err := s.openToDTO(entry)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, nil
}

// SyncSince 增量同步
// 水位在增量查询之前采集，查询窗口内提交的记录下次同步会重发而不会被跳过
func (s *vaultService) SyncSince(ctx context.Context, uid int64, since int64) (*dto.EntrySyncDTO, error) {
	serverTime := timex.Now().UnixMilli()

	var entries []*domain.VaultEntry
	var err error
	if since <= 0 {
		entries, err = s.entryRepo.ListByUID(ctx, uid)
	} else {
		entries, err = s.entryRepo.ListModifiedSince(ctx, uid, since)
	}
	if err != nil {
		return nil, code.ErrorVaultSync.WithDetails(err.Error())
	}

	list := make([]*dto.EntryDTO, 0, len(entries))
	for _, entry := range entries {
		item, err := s.openToDTO(entry)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}

	return &dto.EntrySyncDTO{
		UpdatedEntries: list,
		ServerTime:     serverTime,
	}, nil
}

// Get 获取单个条目
func (s *vaultService) Get(ctx context.Context, id, uid int64) (*dto.EntryDTO, error) {
	entry, err := s.getOwned(ctx, s.entryRepo, id, uid)
	if err != nil {
		return nil, err
	}
	return s.openToDTO(entry)
}

// Update 全量替换可变字段
// 事务内取出后不解密，明文即将被整体覆盖
func (s *vaultService) Update(ctx context.Context, id, uid int64, params *dto.EntryUpdateRequest) (*dto.EntryDTO, error) {
	var saved *domain.VaultEntry

	err := s.entryRepo.Transaction(ctx, func(repo domain.EntryRepository) error {
		entry, err := s.getOwned(ctx, repo, id, uid)
		if err != nil {
			return err
		}

		entry.Name = params.Name
		entry.Username = params.Username
		entry.Password = params.Password
		entry.URL = params.URL
		entry.Notes = params.Notes
		if params.Type != "" {
			entry.Type = params.Type
		}
		entry.Category = params.Category

		if err := s.sealEntry(entry); err != nil {
			return code.ErrorVaultCrypto
		}

		saved, err = repo.Save(ctx, entry)
		if err != nil {
			return code.ErrorVaultEntryModify.WithDetails(err.Error())
		}
		return nil
	})
	if err != nil {
		var c *code.Code
		if errors.As(err, &c) {
			return nil, c
		}
		return nil, code.ErrorVaultEntryModify.WithDetails(err.Error())
	}

	out := s.domainToDTO(saved)
	out.Password = params.Password
	out.Notes = params.Notes
	return out, nil
}

// Delete 物理删除条目
func (s *vaultService) Delete(ctx context.Context, id, uid int64) error {
	err := s.entryRepo.Transaction(ctx, func(repo domain.EntryRepository) error {
		entry, err := s.getOwned(ctx, repo, id, uid)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, entry.ID); err != nil {
			return code.ErrorVaultEntryDelete.WithDetails(err.Error())
		}
		return nil
	})
	if err != nil {
		var c *code.Code
		if errors.As(err, &c) {
			return c
		}
		return code.ErrorVaultEntryDelete.WithDetails(err.Error())
	}
	return nil
}
