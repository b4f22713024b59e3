package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID       `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   ItemRefResponse `json:"item"`
	Booker UserRefResponse `json:"booker"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	resps := make([]*BookingResponse, len(views))
	for i, view := range views {
		resp, err := FromBookingView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}
