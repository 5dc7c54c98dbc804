package port

import "github.com/tucano1306/CRM-sub005/internal/core/domain"

type TokenPayload struct {
	UserID uint64
	Role   domain.Role
}

func (p TokenPayload) Actor() domain.Actor {
	return domain.Actor{ID: p.UserID, Role: p.Role}
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
