package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessionvault/internal/mocks"
	"github.com/dtroode/sessionvault/internal/model"
	"github.com/dtroode/sessionvault/internal/testutil"
)

func TestPayment_Initialize(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	store.On("CreateSession", mock.Anything, mock.MatchedBy(func(s model.PaymentSession) bool {
		return s.Status == model.PaymentPending && s.Amount == 99.5 && s.Currency == "USD" && s.ID != ""
	})).Return(nil)

	p := NewPayment(store, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	id, err := p.Initialize(ctx, 99.5, "USD", "order #42")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	store.AssertExpectations(t)
}

func TestPayment_Initialize_Validation(t *testing.T) {
	ctx := context.Background()
	p := NewPayment(&mocks.PaymentStore{}, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	_, err := p.Initialize(ctx, 0, "USD", "")
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = p.Initialize(ctx, 10, "", "")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestPayment_Process_MasksCard(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	proc := &mocks.PaymentProcessor{}

	session := model.PaymentSession{
		ID:       "psid",
		Amount:   25,
		Currency: "USD",
		Status:   model.PaymentPending,
	}
	store.On("GetSession", mock.Anything, "psid").Return(session, nil)

	cardOK := func(s model.PaymentSession) bool {
		return s.Card != nil &&
			s.Card.Last4 == "1111" &&
			s.Card.HolderName == "ALICE EXAMPLE"
	}
	store.On("CachePayment", mock.Anything, mock.Anything, mock.MatchedBy(cardOK)).Return(nil)
	proc.On("Process", mock.Anything, 25.0, "USD").Return(model.PaymentResult{
		Success:       true,
		TransactionID: "TXN_1",
		Status:        model.PaymentCompleted,
	}, nil)
	store.On("UpdateSession", mock.Anything, mock.MatchedBy(func(s model.PaymentSession) bool {
		return cardOK(s) && s.Status == model.PaymentCompleted && s.Result != nil && s.PaymentID != ""
	})).Return(nil)

	p := NewPayment(store, proc, testutil.MakeNoopLogger())

	paymentID, result, err := p.Process(ctx, "psid", model.CardInput{
		Number:      "4111111111111111",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
		HolderName:  "ALICE EXAMPLE",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, paymentID)
	store.AssertExpectations(t)
	proc.AssertExpectations(t)
}

func TestPayment_Process_FailedResult(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	proc := &mocks.PaymentProcessor{}

	store.On("GetSession", mock.Anything, "psid").Return(model.PaymentSession{
		ID: "psid", Amount: 10, Currency: "EUR", Status: model.PaymentPending,
	}, nil)
	store.On("CachePayment", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	proc.On("Process", mock.Anything, 10.0, "EUR").Return(model.PaymentResult{
		Success: false,
		Status:  model.PaymentFailed,
	}, nil)
	store.On("UpdateSession", mock.Anything, mock.MatchedBy(func(s model.PaymentSession) bool {
		return s.Status == model.PaymentFailed
	})).Return(nil)

	p := NewPayment(store, proc, testutil.MakeNoopLogger())

	_, result, err := p.Process(ctx, "psid", model.CardInput{
		Number: "4111111111111111", ExpiryMonth: "01", ExpiryYear: "2031", CVV: "999", HolderName: "BOB",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestPayment_Process_SessionMissing(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	store.On("GetSession", mock.Anything, "gone").Return(model.PaymentSession{}, model.ErrNotFound)

	p := NewPayment(store, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	_, _, err := p.Process(ctx, "gone", model.CardInput{
		Number: "4111111111111111", ExpiryMonth: "01", ExpiryYear: "2031", CVV: "999", HolderName: "BOB",
	})
	require.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestPayment_Process_MissingDetails(t *testing.T) {
	ctx := context.Background()
	p := NewPayment(&mocks.PaymentStore{}, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	_, _, err := p.Process(ctx, "psid", model.CardInput{Number: "4111111111111111"})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestPayment_Status_SafeProjection(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	store.On("GetSession", mock.Anything, "psid").Return(model.PaymentSession{
		ID:          "psid",
		Amount:      25,
		Currency:    "USD",
		Description: "order",
		Status:      model.PaymentCompleted,
		Card:        &model.MaskedCard{Last4: "1111"},
		Result:      &model.PaymentResult{Success: true},
	}, nil)

	p := NewPayment(store, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	view, err := p.Status(ctx, "psid")
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCompleted, view.Status)
	assert.NotNil(t, view.Result)
}

func TestPayment_Status_Expired(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	store.On("GetSession", mock.Anything, "gone").Return(model.PaymentSession{}, model.ErrNotFound)

	p := NewPayment(store, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	_, err := p.Status(ctx, "gone")
	require.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestPayment_Clear_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	store.On("DeleteSession", mock.Anything, "psid").Return(nil).Twice()

	p := NewPayment(store, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	require.NoError(t, p.Clear(ctx, "psid"))
	require.NoError(t, p.Clear(ctx, "psid"))
}

func TestPayment_Cached(t *testing.T) {
	ctx := context.Background()
	store := &mocks.PaymentStore{}
	store.On("CachedPayment", mock.Anything, "PAY_1").Return(model.PaymentSession{ID: "psid"}, nil)

	p := NewPayment(store, &mocks.PaymentProcessor{}, testutil.MakeNoopLogger())

	cached, err := p.Cached(ctx, "PAY_1")
	require.NoError(t, err)
	assert.Equal(t, "psid", cached.ID)
}
