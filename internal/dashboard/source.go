package dashboard

import (
	"context"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"
)

// ModerationSource is a moderated collection the board reads and acts on.
// Ids passed to the actions are the records' Identity.
type ModerationSource[T entity.Moderated] interface {
	// Label names the resource in notices, e.g. "KYC".
	Label() string
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[T], error)
	Approve(ctx context.Context, id, reason, adminID string) error
	Reject(ctx context.Context, id, reason, adminID string) error
}

// Deleter is implemented by sources whose records can be removed.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// KYCSource moderates KYC records keyed by the owning user's id.
type KYCSource struct {
	client *client.Client
}

func NewKYCSource(c *client.Client) *KYCSource {
	return &KYCSource{client: c}
}

func (s *KYCSource) Label() string {
	return "KYC"
}

func (s *KYCSource) List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error) {
	return s.client.ListKYC(ctx, query)
}

func (s *KYCSource) Approve(ctx context.Context, userID, reason, adminID string) error {
	_, err := s.client.VerifyKYC(ctx, userID, entity.StatusApproved, reason, adminID)

	return err
}

func (s *KYCSource) Reject(ctx context.Context, userID, reason, adminID string) error {
	_, err := s.client.VerifyKYC(ctx, userID, entity.StatusRejected, reason, adminID)

	return err
}

func (s *KYCSource) Delete(ctx context.Context, userID string) error {
	return s.client.DeleteKYC(ctx, userID)
}

// RefundSource moderates refund requests keyed by their own id.
type RefundSource struct {
	client *client.Client
}

func NewRefundSource(c *client.Client) *RefundSource {
	return &RefundSource{client: c}
}

func (s *RefundSource) Label() string {
	return "Refund"
}

func (s *RefundSource) List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Refund], error) {
	return s.client.ListRefunds(ctx, query)
}

func (s *RefundSource) Approve(ctx context.Context, refundID, reason, adminID string) error {
	_, err := s.client.ApproveRefund(ctx, refundID, reason, adminID)

	return err
}

func (s *RefundSource) Reject(ctx context.Context, refundID, reason, adminID string) error {
	_, err := s.client.RejectRefund(ctx, refundID, reason, adminID)

	return err
}

// MissionSource is the mission collection behind MissionBoard.
type MissionSource interface {
	List(ctx context.Context, page, limit int) (*entity.Page[entity.Mission], error)
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

type clientMissions struct {
	client *client.Client
}

// NewMissionSource reads missions through the gateway client.
func NewMissionSource(c *client.Client) MissionSource {
	return &clientMissions{client: c}
}

func (s *clientMissions) List(ctx context.Context, page, limit int) (*entity.Page[entity.Mission], error) {
	return s.client.ListMissions(ctx, page, limit)
}

func (s *clientMissions) SetPublished(ctx context.Context, id string, published bool) error {
	_, err := s.client.SetMissionPublished(ctx, id, published)

	return err
}

func (s *clientMissions) Delete(ctx context.Context, id string) error {
	return s.client.DeleteMission(ctx, id)
}
