package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Username: "alice", Password: "secret123", Email: "alice@x.io", Role: "CLIENT"}

	tests := []struct {
		name    string
		modify  func(r *RegisterRequest)
		wantErr bool
	}{
		{name: "Valid", modify: func(r *RegisterRequest) {}},
		{name: "Short username", modify: func(r *RegisterRequest) { r.Username = "al" }, wantErr: true},
		{name: "Password without digit", modify: func(r *RegisterRequest) { r.Password = "secretsecret" }, wantErr: true},
		{name: "Password without letter", modify: func(r *RegisterRequest) { r.Password = "12345678" }, wantErr: true},
		{name: "Short password", modify: func(r *RegisterRequest) { r.Password = "abc123" }, wantErr: true},
		{name: "Bad email", modify: func(r *RegisterRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "Unknown role", modify: func(r *RegisterRequest) { r.Role = "ADMIN" }, wantErr: true},
		{name: "Lowercase role", modify: func(r *RegisterRequest) { r.Role = "client" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfileUpdateRequest_Validate(t *testing.T) {
	empty := ""
	bad := "nope"

	assert.NoError(t, (&ProfileUpdateRequest{}).Validate())
	assert.NoError(t, (&ProfileUpdateRequest{Email: &empty}).Validate())
	assert.Error(t, (&ProfileUpdateRequest{Email: &bad}).Validate())
	assert.Error(t, (&ProfileUpdateRequest{NewPassword: "short"}).Validate())
	assert.NoError(t, (&ProfileUpdateRequest{CurrentPassword: "x", NewPassword: "longer123"}).Validate())
}

func TestEventRequest_Validate(t *testing.T) {
	assert.NoError(t, (&EventRequest{Title: "Gala"}).Validate())
	assert.NoError(t, (&EventRequest{Title: "Gala", Status: "Completed", Amount: 5000}).Validate())
	assert.Error(t, (&EventRequest{}).Validate())
	assert.Error(t, (&EventRequest{Title: "Gala", Status: "Done"}).Validate())
	assert.Error(t, (&EventRequest{Title: "Gala", Amount: -1}).Validate())
}

func TestResourceRequest_ToDomain(t *testing.T) {
	off := false

	assert.True(t, (&ResourceRequest{Name: "Chairs"}).ToDomain().Availability)
	assert.False(t, (&ResourceRequest{Name: "Chairs", Availability: &off}).ToDomain().Availability)
}

func TestAllocationRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AllocationRequest{Quantity: 1}).Validate())
	assert.Error(t, (&AllocationRequest{Quantity: 0}).Validate())
	assert.Error(t, (&AllocationRequest{Quantity: -2}).Validate())
}

func TestMessageRequest_Validate(t *testing.T) {
	assert.NoError(t, (&MessageRequest{EventID: 1, Content: "hi"}).Validate())
	assert.Error(t, (&MessageRequest{EventID: 1}).Validate())
	assert.Error(t, (&MessageRequest{Content: "hi"}).Validate())
	assert.Error(t, (&MessageRequest{EventID: 1, Content: strings.Repeat("x", 2001)}).Validate())
}

func TestPaymentRequests_Validate(t *testing.T) {
	assert.NoError(t, (&PaymentOrderRequest{Amount: 100}).Validate())
	assert.Error(t, (&PaymentOrderRequest{Amount: 0}).Validate())

	assert.NoError(t, (&PaymentVerifyRequest{OrderID: "o", PaymentID: "p", Signature: "s", EventID: 1}).Validate())
	assert.Error(t, (&PaymentVerifyRequest{OrderID: "o", PaymentID: "p", EventID: 1}).Validate())
}
