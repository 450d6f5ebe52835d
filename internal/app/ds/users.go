// internal/app/ds/users.go
package ds

// Users пользователь системы. IsAdmin дает доступ к CRUD измерений и фактов
type Users struct {
	UserID   uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Login    string `gorm:"type:varchar(255) not null;uniqueIndex:idx_users_login" json:"login"`
	Password string `gorm:"type:varchar(255) not null" json:"-"`
	IsAdmin  bool   `gorm:"type:boolean not null;default:false" json:"is_admin"`
}

func (Users) TableName() string {
	return "users"
}
