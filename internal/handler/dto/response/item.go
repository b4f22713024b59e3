package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"shareit/internal/usecase/queries"
)

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []CommentResponse   `json:"comments"`
}

func FromItemView(view *queries.ItemView) (*ItemResponse, error) {
	var resp ItemResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromItemViews(views []*queries.ItemView) ([]*ItemResponse, error) {
	resps := make([]*ItemResponse, len(views))
	for i, view := range views {
		resp, err := FromItemView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}

func FromItemDetailView(view *queries.ItemDetailView) (*ItemDetailResponse, error) {
	var resp ItemDetailResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	if resp.Comments == nil {
		resp.Comments = []CommentResponse{}
	}
	return &resp, nil
}

func FromItemDetailViews(views []*queries.ItemDetailView) ([]*ItemDetailResponse, error) {
	resps := make([]*ItemDetailResponse, len(views))
	for i, view := range views {
		resp, err := FromItemDetailView(view)
		if err != nil {
			return nil, err
		}
		resps[i] = resp
	}
	return resps, nil
}

func FromCommentView(view *queries.CommentView) (*CommentResponse, error) {
	var resp CommentResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}
