package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(view *queries.UserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromUserViews(views []*queries.UserView) ([]*UserResponse, error) {
	resps := make([]*UserResponse, len(views))
	for i, view := range views {
		resp, err := FromUserView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}
