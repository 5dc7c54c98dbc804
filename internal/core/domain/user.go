package domain

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "SELLER"
	RoleClient Role = "CLIENT"
)

func ToRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleSeller, RoleClient:
		return r, nil
	}
	return "", ErrUnknownRole
}

type User struct {
	ID       uint64
	Login    string
	Password string
	Role     Role
}

// Actor identifies who performs an operation. It is passed explicitly into
// the service layer so the core never reads ambient auth state.
type Actor struct {
	ID   uint64
	Role Role
}

func (a Actor) CanManageOrder(o *Order) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.Role == RoleSeller && a.ID == o.SellerID
}

func (a Actor) CanReadOrder(o *Order) bool {
	if a.CanManageOrder(o) {
		return true
	}
	return a.Role == RoleClient && a.ID == o.ClientID
}

func (a Actor) CanReadStats() bool {
	return a.Role == RoleAdmin || a.Role == RoleSeller
}
