package submission_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/svc/submission"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, rec submission.Record) (string, error) {
	args := m.Called(ctx, rec)
	return args.String(0), args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Verify(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

// stubTemplates renders fixed subjects and can be told to fail per side.
type stubTemplates struct {
	operatorErr  error
	submitterErr error
}

func (s stubTemplates) OperatorNotification(_ context.Context, n submission.Notice) (submission.Rendered, error) {
	if s.operatorErr != nil {
		return submission.Rendered{}, s.operatorErr
	}
	return submission.Rendered{
		Subject: "New " + n.Kind.String() + " from " + n.SubmitterName,
		HTML:    "<p>operator</p>",
		Text:    "operator",
	}, nil
}

func (s stubTemplates) SubmitterConfirmation(_ context.Context, n submission.Notice) (submission.Rendered, error) {
	if s.submitterErr != nil {
		return submission.Rendered{}, s.submitterErr
	}
	return submission.Rendered{
		Subject: "Thanks, " + n.SubmitterName,
		HTML:    "<p>submitter</p>",
		Text:    "submitter",
	}, nil
}

var errBoom = errors.New("boom")

const operatorEmail = "team@example.com"

func toOperator(p email.SendEmailParams) bool  { return p.SendTo == operatorEmail }
func toSubmitter(p email.SendEmailParams) bool { return p.SendTo != operatorEmail }
