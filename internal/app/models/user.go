package models

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
	RoleStaff  Role = "staff"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleStaff:
		return true
	}
	return false
}

// User is the profile of the signed-in clinical staff member.
type User struct {
	ID              ID     `json:"id" bson:"id"`
	Email           string `json:"email" bson:"email"`
	Name            string `json:"name" bson:"name"`
	Role            Role   `json:"role" bson:"role"`
	IsEmailVerified bool   `json:"isEmailVerified" bson:"isEmailVerified"`
	TimeModel       `bson:",inline"`
}

// UserState tells apart a missing stored profile from one that failed to parse.
type UserState string

const (
	UserStatePresent UserState = "present"
	UserStateAbsent  UserState = "absent"
	UserStateCorrupt UserState = "corrupt"
)
