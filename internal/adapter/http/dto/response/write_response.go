package response

import "shajghor/internal/usecase"

// InsertResponse acknowledges a create. InsertedID is null when nothing was
// inserted, with Message saying why.
type InsertResponse struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
	Role         string  `json:"role,omitempty"`
}

type DeleteResponse struct {
	Acknowledged bool `json:"acknowledged"`
	DeletedCount int  `json:"deletedCount"`
}

func Inserted(id string) InsertResponse {
	return InsertResponse{Acknowledged: true, InsertedID: &id}
}

func Deleted() DeleteResponse {
	return DeleteResponse{Acknowledged: true, DeletedCount: 1}
}

func FromSignup(res usecase.SignupResult) InsertResponse {
	if res.InsertedID == nil {
		return InsertResponse{Acknowledged: true, Message: res.Message}
	}
	return InsertResponse{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
		Role:         string(res.Account.Role),
	}
}
