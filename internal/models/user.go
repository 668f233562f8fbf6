package models

// User roles.
const (
	RoleCitizen      = "citizen"
	RoleCompany      = "company"
	RolePublicAgency = "public_agency"
)

// UnknownUsername is shown when a referenced user cannot be resolved.
const UnknownUsername = "Unknown User"

// User is a dashboard participant. Companies are users with RoleCompany.
type User struct {
	ID       uint   `json:"id" bson:"id" gorm:"primaryKey"`
	Username string `json:"username" bson:"username" gorm:"size:100"`
	Email    string `json:"email" bson:"email" gorm:"uniqueIndex"`
	Role     string `json:"role" bson:"role" gorm:"size:20;index"`
	Type     string `json:"type" bson:"type" gorm:"size:20"`
}

// UserCompact is the author/participant shape embedded in aggregated views.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ToCompact returns the compact form of the user.
func (u *User) ToCompact() UserCompact {
	role := u.Type
	if role == "" {
		role = RoleCitizen
	}
	return UserCompact{ID: u.ID, Username: u.Username, Role: role}
}

// UnknownCompact is the participant placeholder for a user id with no matching row.
func UnknownCompact(id uint) UserCompact {
	return UserCompact{ID: id, Username: UnknownUsername, Role: RoleCitizen}
}
