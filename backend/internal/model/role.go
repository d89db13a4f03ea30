package model

// Role 用户角色等级 — 对应 users.role
// 数值越大权限越高，数值本身会写入 JWT
type Role int

const (
	RoleViewer Role = 1 // 普通用户：只能查看启用中的课程
	RoleEditor Role = 2 // 教师
	RoleAdmin  Role = 3 // 管理员
)

// Valid 是否为已定义的角色
func (r Role) Valid() bool {
	return r >= RoleViewer && r <= RoleAdmin
}

// CanSeeInactiveCourses 是否可以查看已停用的课程
func (r Role) CanSeeInactiveCourses() bool {
	return r > RoleEditor
}

// CanManageCourses 是否可以创建、修改课程
func (r Role) CanManageCourses() bool {
	return r >= RoleAdmin
}

// AtLeast 角色等级不低于 min
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleEditor:
		return "editor"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
