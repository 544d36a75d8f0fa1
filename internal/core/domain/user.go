package domain

// DefaultSecret is stored when a user registers without a secret.
const DefaultSecret = "12345"

// User is a registered shopper. The secret holds whatever form the configured
// secret hasher produced.
type User struct {
	login  string
	secret string
	basket *Basket
}

// NewUser builds a user owning basket, or a fresh empty basket when nil.
func NewUser(login, secret string, basket *Basket) *User {
	if basket == nil {
		basket = NewBasket(nil)
	}
	return &User{login: login, secret: secret, basket: basket}
}

func (u *User) Login() string { return u.login }

func (u *User) Secret() string { return u.secret }

func (u *User) Basket() *Basket { return u.basket }

// ResolveSecret returns DefaultSecret for an empty secret and reports whether
// the fallback was used.
func ResolveSecret(secret string) (string, bool) {
	if secret == "" {
		return DefaultSecret, true
	}
	return secret, false
}
