//go:build unit || e2e

package builder

import (
	domuser "shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Taro Yamada",
		Email: "taro@example.com",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(b.Name, email)
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{
		ID:    uuid.New(),
		Name:  b.Name,
		Email: b.Email,
	}
}
