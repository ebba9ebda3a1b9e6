package response

import (
	"encoding/json"
	"testing"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"
)

func TestFromSignup_Duplicate(t *testing.T) {
	raw, err := json.Marshal(FromSignup(usecase.SignupResult{Message: usecase.MessageUserAlreadyExists}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"acknowledged":true,"insertedId":null,"message":"User already exists"}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestFromSignup_Inserted(t *testing.T) {
	id := "acc-1"
	res := FromSignup(usecase.SignupResult{InsertedID: &id, Account: entities.Account{Role: entities.RoleUser}})
	if res.InsertedID == nil || *res.InsertedID != "acc-1" || res.Role != "user" || res.Message != "" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestInsertedAndDeleted(t *testing.T) {
	if r := Inserted("bk-1"); !r.Acknowledged || *r.InsertedID != "bk-1" {
		t.Fatalf("unexpected insert response: %+v", r)
	}
	if r := Deleted(); !r.Acknowledged || r.DeletedCount != 1 {
		t.Fatalf("unexpected delete response: %+v", r)
	}
}
