package user

import (
	"context"

	"github.com/xiebiao/bookstore-admin/internal/domain/user"
)

// ProfileUseCase 查询当前用户信息用例
type ProfileUseCase struct {
	userRepo user.Repository
}

// NewProfileUseCase 创建用户信息查询用例
func NewProfileUseCase(userRepo user.Repository) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo}
}

// Execute 根据Token中的用户ID查询用户信息
func (uc *ProfileUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(u)
	return &info, nil
}
