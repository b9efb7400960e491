package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *Input {
	return &Input{
		SenderName:       "alice",
		ReceiverName:     "bob",
		SenderLocation:   "us",
		ReceiverLocation: "ng",
		Amount:           120.50,
		AccountID:        "acct-1",
	}
}

func TestNormalize(t *testing.T) {
	in := &Input{
		SenderName:       "  alice ",
		ReceiverName:     "bob",
		SenderLocation:   " us",
		ReceiverLocation: "ng ",
		Amount:           10,
		AccountID:        " acct-1 ",
	}
	in.Normalize()

	assert.Equal(t, "alice", in.SenderName)
	assert.Equal(t, "US", in.SenderLocation)
	assert.Equal(t, "NG", in.ReceiverLocation)
	assert.Equal(t, "acct-1", in.AccountID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		field   string
		wantErr bool
	}{
		{name: "valid", mutate: func(in *Input) {}, wantErr: false},
		{name: "missing sender", mutate: func(in *Input) { in.SenderName = "" }, field: "sender_name", wantErr: true},
		{name: "missing receiver", mutate: func(in *Input) { in.ReceiverName = "" }, field: "receiver_name", wantErr: true},
		{name: "missing sender location", mutate: func(in *Input) { in.SenderLocation = "" }, field: "sender_location", wantErr: true},
		{name: "missing receiver location", mutate: func(in *Input) { in.ReceiverLocation = "" }, field: "receiver_location", wantErr: true},
		{name: "missing account", mutate: func(in *Input) { in.AccountID = "" }, field: "account_id", wantErr: true},
		{name: "zero amount", mutate: func(in *Input) { in.Amount = 0 }, field: "amount", wantErr: true},
		{name: "negative amount", mutate: func(in *Input) { in.Amount = -5 }, field: "amount", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := in.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestNew(t *testing.T) {
	in := validInput()
	in.Normalize()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tx := New(in, true, []string{"reason one", "reason two"}, now)

	require.Len(t, tx.ID, 8)
	assert.True(t, tx.IsFraud)
	assert.Equal(t, "reason one | reason two", tx.FraudReason)
	assert.Equal(t, now, tx.CreatedAt)
	assert.Equal(t, in.AccountID, tx.AccountID)
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		require.Len(t, id, 8)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
