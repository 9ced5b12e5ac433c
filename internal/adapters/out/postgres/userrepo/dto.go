// Package userrepo persists the user directory.
package userrepo

import (
	"time"

	"tailorshop/internal/adapters/out/postgres/pgutil"
	"tailorshop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is one row of the users table.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID().Bytes(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := pgutil.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, role)
}
