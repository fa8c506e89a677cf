package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind_IsValid(t *testing.T) {
	assert.True(t, ParseKindLink.IsValid())
	assert.True(t, ParseKindText.IsValid())
	assert.False(t, ParseKind("file").IsValid())
	assert.False(t, ParseKind("").IsValid())
}

func TestParseStatus_IsValid(t *testing.T) {
	assert.True(t, ParseStatusPending.IsValid())
	assert.True(t, ParseStatusDone.IsValid())
	assert.True(t, ParseStatusFailed.IsValid())
	assert.False(t, ParseStatus("queued").IsValid())
}

func TestParseRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  ParseRecord
		wantErr bool
	}{
		{
			name:   "valid link record",
			record: ParseRecord{Kind: ParseKindLink, Input: "https://example.com"},
		},
		{
			name:   "valid text record",
			record: ParseRecord{Kind: ParseKindText, Input: "some pasted text"},
		},
		{
			name:    "missing input",
			record:  ParseRecord{Kind: ParseKindText, Input: "   "},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			record:  ParseRecord{Kind: "file", Input: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRecord_Filed(t *testing.T) {
	record := ParseRecord{}
	assert.False(t, record.Filed())

	record.NoteID = "note-1"
	assert.True(t, record.Filed())
}
