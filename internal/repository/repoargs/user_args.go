package repoargs

type CreateUser struct {
	Username          string
	Email             string
	Phone             string
	Name              string
	EncryptedPassword string
}
