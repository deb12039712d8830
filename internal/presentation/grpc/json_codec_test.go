package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodec(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec, "codec registered under its content-subtype")

	t.Run("round trips a request", func(t *testing.T) {
		data, err := codec.Marshal(&SubmitSettlementRequestRequest{LoanID: 4, Amount: "1000.50"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"loan_id":4,"amount":"1000.50"}`, string(data))

		var got SubmitSettlementRequestRequest
		require.NoError(t, codec.Unmarshal(data, &got))
		assert.Equal(t, int64(4), got.LoanID)
		assert.Equal(t, "1000.50", got.Amount)
	})

	t.Run("empty frame decodes to the zero message", func(t *testing.T) {
		var got ClassifyRiskRequest
		require.NoError(t, codec.Unmarshal(nil, &got))
		assert.Zero(t, got.Score)
	})

	t.Run("malformed payload names the target type", func(t *testing.T) {
		var got ClassifyRiskRequest
		err := codec.Unmarshal([]byte(`{"score":`), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ClassifyRiskRequest")
	})
}
