package domain

const (
	RoleUser       uint8 = 1
	RoleAdmin      uint8 = 2
	RoleSuperAdmin uint8 = 3
)

type User struct {
	Id       int64
	SN       string
	Email    string
	Avatar   string
	Nickname string
	// Role 取值与 permission 模块的角色常量一致
	Role  uint8
	Ctime int64
	Utime int64
}
