package internal

type Account struct {
	Platform string
	Name     string
	Auth     string
}

func (a Account) ID() string {
	return a.Platform + "/" + a.Name
}

// Calendar identifies one calendar to be audited, together with the
// account that owns it.
type Calendar struct {
	ID         string
	Name       string
	ProviderID string
	Account    Account
}

func (c Calendar) String() string {
	return c.ID
}
