package domain

import "time"

// UserTypeAdmin тип пользователя с доступом к дашборду
const UserTypeAdmin = "admin"

// User пользователь CMS
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"userType,omitempty"`
	RoleName string `json:"roleName,omitempty"`
}

// IsAdmin true для администраторов
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// Session сессия администратора: токен CMS, пользователь и состояние дашборда.
// Создается при логине, удаляется при логауте или по TTL.
type Session struct {
	ID        string    `json:"id"`
	JWT       string    `json:"jwt"`
	User      User      `json:"user"`
	View      ViewState `json:"view"`
	CreatedAt time.Time `json:"createdAt"`
}
