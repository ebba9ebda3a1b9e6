package request

import (
	"encoding/json"
	"testing"

	"shajghor/internal/domain/entities"
)

func TestBookingRequest_IgnoresStateFields(t *testing.T) {
	body := `{"userEmail":" a@x.com ","serviceId":"s1","price":"50","paymentStatus":"paid","status":"assigned","decoratorEmail":"d@x.com"}`

	var r BookingRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.UserEmail != "a@x.com" || in.ServiceID != "s1" || in.Price != entities.PriceFromString("50") {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAssignmentRequest_DropsUnknownFields(t *testing.T) {
	body := `{"decoratorEmail":"d@x.com","paymentStatus":"paid","price":0}`

	var r AssignmentRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := r.ToAssignment()
	if a != (entities.Assignment{DecoratorEmail: "d@x.com"}) {
		t.Fatalf("unexpected assignment: %+v", a)
	}
}

func TestDecoratorStatusRequest_ResolveStatus(t *testing.T) {
	cases := []struct {
		r    DecoratorStatusRequest
		want string
	}{
		{DecoratorStatusRequest{DecoratorStatus: "Completed"}, "Completed"},
		{DecoratorStatusRequest{Status: " in-progress "}, "in-progress"},
		{DecoratorStatusRequest{DecoratorStatus: "Completed", Status: "in-progress"}, "Completed"},
		{DecoratorStatusRequest{}, ""},
	}
	for _, tc := range cases {
		if got := tc.r.ResolveStatus(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestBookingListQuery_ToQuery(t *testing.T) {
	q := BookingListQuery{Page: "2", Size: "abc", Sort: " price "}.ToQuery()
	if q.Page != 2 || q.Size != 0 || q.Sort != entities.SortByPrice {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestServiceRequest_AcceptsStringAndNumberAmounts(t *testing.T) {
	var r ServiceRequest
	if err := json.Unmarshal([]byte(`{"title":"Stage","price":"1200.50","decoratorCommission":150}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.Price != "1200.50" || in.DecoratorCommission != "150" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
