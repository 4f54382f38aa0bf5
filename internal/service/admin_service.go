package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"agora/internal/model/auth"
	authRepo "agora/internal/repository/auth"
)

var (
	ErrNotPending        = errors.New("user is not pending approval")
	ErrCannotModifySelf  = errors.New("cannot change own account")
	ErrCannotModifyAdmin = errors.New("cannot change another admin")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// AdminService 管理服务
type AdminService struct {
	userRepo *authRepo.UserRepo
}

// NewAdminService 创建管理服务
func NewAdminService(userRepo *authRepo.UserRepo) *AdminService {
	return &AdminService{userRepo: userRepo}
}

// ListUsers 查询用户列表（支持状态/角色筛选和分页）
func (s *AdminService) ListUsers(ctx context.Context, status, role string, page, pageSize int64) ([]*auth.User, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if role != "" {
		filter["role"] = role
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return s.userRepo.List(ctx, filter, page, pageSize)
}

// ListPending 查询待审核用户
func (s *AdminService) ListPending(ctx context.Context) ([]*auth.User, error) {
	users, _, err := s.userRepo.List(ctx, bson.M{"status": auth.UserStatusPending}, 1, 100)
	return users, err
}

// Approve 批准注册申请
// 条件更新，仅 pending 状态可批准，并发下重复批准只生效一次
func (s *AdminService) Approve(ctx context.Context, userID string) (*auth.User, error) {
	ok, err := s.userRepo.UpdateStatusIf(ctx, userID, auth.UserStatusPending, auth.UserStatusActive)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to approve user")
		return nil, errors.New("failed to approve user")
	}
	if !ok {
		return nil, ErrNotPending
	}

	log.Info().Str("user_id", userID).Msg("user approved")
	return s.userRepo.FindByID(ctx, userID)
}

// Reject 拒绝注册申请（终态）
func (s *AdminService) Reject(ctx context.Context, userID string) (*auth.User, error) {
	ok, err := s.userRepo.UpdateStatusIf(ctx, userID, auth.UserStatusPending, auth.UserStatusRejected)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to reject user")
		return nil, errors.New("failed to reject user")
	}
	if !ok {
		return nil, ErrNotPending
	}

	log.Info().Str("user_id", userID).Msg("user rejected")
	return s.userRepo.FindByID(ctx, userID)
}

// ChangeRole 变更用户角色
// 不能修改自己或其他管理员
func (s *AdminService) ChangeRole(ctx context.Context, adminID, userID string, role auth.UserRole) (*auth.User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	target, err := s.guardTarget(ctx, adminID, userID)
	if err != nil {
		return nil, err
	}

	if target.Role == role {
		return target, nil
	}

	update := bson.M{"$set": bson.M{"role": role}}
	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to change role")
		return nil, errors.New("failed to change role")
	}

	log.Info().
		Str("user_id", userID).
		Str("role", role.String()).
		Str("admin_id", adminID).
		Msg("user role changed")

	return s.userRepo.FindByID(ctx, userID)
}

// ChangeStatus 变更用户状态（active <-> inactive）
// 不能修改自己或其他管理员，且必须是合法流转
func (s *AdminService) ChangeStatus(ctx context.Context, adminID, userID string, status auth.UserStatus) (*auth.User, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	target, err := s.guardTarget(ctx, adminID, userID)
	if err != nil {
		return nil, err
	}

	if target.Status == status {
		return target, nil
	}
	if !target.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	ok, err := s.userRepo.UpdateStatusIf(ctx, userID, target.Status, status)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to change status")
		return nil, errors.New("failed to change status")
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	log.Info().
		Str("user_id", userID).
		Str("status", status.String()).
		Str("admin_id", adminID).
		Msg("user status changed")

	return s.userRepo.FindByID(ctx, userID)
}

// guardTarget 校验管理操作的目标用户
func (s *AdminService) guardTarget(ctx context.Context, adminID, userID string) (*auth.User, error) {
	if userID == adminID {
		return nil, ErrCannotModifySelf
	}

	target, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if target.Role == auth.RoleAdmin {
		return nil, ErrCannotModifyAdmin
	}

	return target, nil
}
