package domain

// Identity is the authenticated user as described by the identity provider.
type Identity struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	EmailAddresses []string `json:"emailAddresses"`
	PhoneNumbers   []string `json:"phoneNumbers"`
	Role           string   `json:"role,omitempty"`
}

const RoleAdmin = "admin"

func (i *Identity) PrimaryEmail() string {
	if i == nil || len(i.EmailAddresses) == 0 {
		return ""
	}
	return i.EmailAddresses[0]
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
