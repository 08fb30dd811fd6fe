package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
	"github.com/communova/communova-backend/internal/service/auth"
	"github.com/communova/communova-backend/internal/service/notification"
	"github.com/communova/communova-backend/internal/service/payment"
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context, rawToken string) error
	MeFunc       func(ctx context.Context, p domain.Principal) (*domain.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context, rawToken string) error {
	return m.LogoutFunc(ctx, rawToken)
}

func (m *authServiceMock) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	return m.MeFunc(ctx, p)
}

type notificationServiceMock struct {
	CreateFunc      func(ctx context.Context, p domain.Principal, input notification.CreateInput) (*domain.Notification, error)
	ListFunc        func(ctx context.Context, p domain.Principal, input notification.ListInput) ([]*domain.Notification, error)
	MarkReadFunc    func(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Notification, error)
	MarkAllReadFunc func(ctx context.Context, p domain.Principal) (int64, error)
	DeleteFunc      func(ctx context.Context, p domain.Principal, id uuid.UUID) error
}

func (m *notificationServiceMock) Create(ctx context.Context, p domain.Principal, input notification.CreateInput) (*domain.Notification, error) {
	return m.CreateFunc(ctx, p, input)
}

func (m *notificationServiceMock) List(ctx context.Context, p domain.Principal, input notification.ListInput) ([]*domain.Notification, error) {
	return m.ListFunc(ctx, p, input)
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Notification, error) {
	return m.MarkReadFunc(ctx, p, id)
}

func (m *notificationServiceMock) MarkAllRead(ctx context.Context, p domain.Principal) (int64, error) {
	return m.MarkAllReadFunc(ctx, p)
}

func (m *notificationServiceMock) Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	return m.DeleteFunc(ctx, p, id)
}

type paymentServiceMock struct {
	CreateFunc             func(ctx context.Context, p domain.Principal, input payment.CreateInput) (*domain.Payment, error)
	GetFunc                func(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error)
	ListFunc               func(ctx context.Context, p domain.Principal, status domain.PaymentStatus, limit, offset int) ([]*domain.Payment, error)
	ApplyGatewayResultFunc func(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error)
	MarkVerifiedFunc       func(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error)
}

func (m *paymentServiceMock) Create(ctx context.Context, p domain.Principal, input payment.CreateInput) (*domain.Payment, error) {
	return m.CreateFunc(ctx, p, input)
}

func (m *paymentServiceMock) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error) {
	return m.GetFunc(ctx, p, id)
}

func (m *paymentServiceMock) List(ctx context.Context, p domain.Principal, status domain.PaymentStatus, limit, offset int) ([]*domain.Payment, error) {
	return m.ListFunc(ctx, p, status, limit, offset)
}

func (m *paymentServiceMock) ApplyGatewayResult(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error) {
	return m.ApplyGatewayResultFunc(ctx, id, target)
}

func (m *paymentServiceMock) MarkVerified(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error) {
	return m.MarkVerifiedFunc(ctx, p, id)
}

type engagementServiceMock struct {
	LikeFunc          func(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error
	UnlikeFunc        func(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error
	CountByTargetFunc func(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error)
	ListByUserFunc    func(ctx context.Context, p domain.Principal, limit, offset int) ([]*domain.Like, error)
}

func (m *engagementServiceMock) Like(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error {
	return m.LikeFunc(ctx, p, targetType, targetID)
}

func (m *engagementServiceMock) Unlike(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error {
	return m.UnlikeFunc(ctx, p, targetType, targetID)
}

func (m *engagementServiceMock) CountByTarget(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error) {
	return m.CountByTargetFunc(ctx, targetType, targetID)
}

func (m *engagementServiceMock) ListByUser(ctx context.Context, p domain.Principal, limit, offset int) ([]*domain.Like, error) {
	return m.ListByUserFunc(ctx, p, limit, offset)
}
