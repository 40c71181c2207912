package authorization

type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeCustomer UserType = "customer"
)

func (t UserType) String() string {
	return string(t)
}

func (t UserType) IsAdmin() bool {
	return t == UserTypeAdmin
}

func (t UserType) IsValid() bool {
	return t == UserTypeAdmin || t == UserTypeCustomer
}

func ParseUserType(s string) UserType {
	t := UserType(s)
	if t.IsValid() {
		return t
	}
	return UserTypeCustomer
}
