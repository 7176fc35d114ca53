package domain

// Role роль пользователя, от имени которого выполняется операция
type Role string

const (
	RoleClient Role = "client"
	RoleB2B    Role = "b2b" // B2B-покупатель, с точки зрения бронирования ведёт себя как клиент
	RoleChef   Role = "chef"
	RoleAdmin  Role = "admin"
	RoleSystem Role = "system"
)

// SystemActor актор для фоновых задач
var SystemActor = Actor{Role: RoleSystem}

// Actor явный контекст вызова: кто и в какой роли выполняет операцию
type Actor struct {
	UserID int64
	Role   Role
}

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleB2B, RoleChef, RoleAdmin, RoleSystem:
		return true
	}
	return false
}

// IsClientLike возвращает true для ролей, которые бронируют и платят
func (r Role) IsClientLike() bool {
	return r == RoleClient || r == RoleB2B
}

// normalize сводит B2B к клиенту для таблицы переходов
func (r Role) normalize() Role {
	if r == RoleB2B {
		return RoleClient
	}
	return r
}
