package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witnet/witnet-evm/internal/usecase"
)

func TestCallOne(t *testing.T) {
	tests := []struct {
		name    string
		values  []any
		err     error
		want    string
		wantErr string
	}{
		{name: "single value", values: []any{"2.0.16"}, want: "2.0.16"},
		{name: "extra values ignored", values: []any{"2.0.16", uint8(1)}, want: "2.0.16"},
		{name: "no values", values: []any{}, wantErr: "version returned no values"},
		{name: "type mismatch", values: []any{true}, wantErr: "version returned bool, expected string"},
		{name: "call error", err: errors.New("execution reverted"), wantErr: "execution reverted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := &MockContractCaller{}
			if tt.err != nil {
				caller.On("Call", oracleAddr, "version").Return(nil, tt.err)
			} else {
				caller.On("Call", oracleAddr, "version").Return(tt.values, nil)
			}

			got, err := usecase.CallOne[string](context.Background(), caller, oracleAddr, nil, "version")
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
