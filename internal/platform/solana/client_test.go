package solana

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRecipient = "AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4"
	testMint      = "7d7jZLzHHefeSDqJj9EJhTrA1Ujmsb3saxs5vPdtpump"
	testSecretKey = "test-sender-secret"
)

func transferRequest() TransferRequest {
	return TransferRequest{
		Recipient:       testRecipient,
		TokenMint:       testMint,
		Amount:          1200,
		Decimals:        6,
		SenderSecretKey: testSecretKey,
	}
}

func TestTransferSuccess(t *testing.T) {
	client := NewClient("https://api.mainnet-beta.solana.com")

	result := client.Transfer(context.Background(), transferRequest())

	require.True(t, result.Success)
	assert.Len(t, result.Signature, 64)
	assert.Empty(t, result.Error)
	assert.False(t, result.Timestamp.IsZero())
}

func TestTransferInvalidRecipient(t *testing.T) {
	client := NewClient("")

	req := transferRequest()
	req.Recipient = "not-an-address"
	result := client.Transfer(context.Background(), req)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid wallet address")
	assert.Empty(t, result.Signature)
}

func TestTransferInvalidMint(t *testing.T) {
	client := NewClient("")

	req := transferRequest()
	req.TokenMint = "bogus"
	result := client.Transfer(context.Background(), req)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid token mint")
}

func TestTransferMissingSenderKey(t *testing.T) {
	client := NewClient("")

	req := transferRequest()
	req.SenderSecretKey = ""
	result := client.Transfer(context.Background(), req)

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no sender secret key")
}

func TestTransferCancelledContext(t *testing.T) {
	client := NewClient("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := client.Transfer(ctx, transferRequest())

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "transfer error")
}

func TestWithdrawFeeMath(t *testing.T) {
	client := NewClient("")

	req := WithdrawalRequest{TransferRequest: transferRequest(), FeePercentage: 0.05}
	req.Amount = 100

	result := client.Withdraw(context.Background(), req)

	require.True(t, result.Success)
	assert.InDelta(t, 5.0, result.FeeAmount, 1e-9)
	assert.InDelta(t, 95.0, result.NetAmount, 1e-9)
	assert.NotEmpty(t, result.Signature)
}

func TestWithdrawFeeOutOfRange(t *testing.T) {
	client := NewClient("")

	for _, fee := range []float64{0, 0.009, 0.16, -0.05} {
		req := WithdrawalRequest{TransferRequest: transferRequest(), FeePercentage: fee}
		result := client.Withdraw(context.Background(), req)

		require.False(t, result.Success, "fee %v must be rejected", fee)
		assert.Empty(t, result.Signature)
		assert.Zero(t, result.FeeAmount)
	}
}

func TestWithdrawTransferFailureCarriesNoFee(t *testing.T) {
	client := NewClient("")

	req := WithdrawalRequest{TransferRequest: transferRequest(), FeePercentage: 0.05}
	req.SenderSecretKey = ""
	result := client.Withdraw(context.Background(), req)

	require.False(t, result.Success)
	assert.Zero(t, result.FeeAmount)
	assert.Zero(t, result.NetAmount)
}
