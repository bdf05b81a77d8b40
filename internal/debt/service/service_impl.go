package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/piadesu/attn-store/internal/debt/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("debt.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	cusName := strings.TrimSpace(req.CusName)
	if cusName == "" {
		return nil, domain.ErrInvalidName
	}
	if req.AmountPaid <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	paymentDate := now
	if req.PaymentDate != nil && strings.TrimSpace(*req.PaymentDate) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*req.PaymentDate))
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		paymentDate = parsed
	}

	var note *string
	if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
		trimmed := strings.TrimSpace(*req.Note)
		note = &trimmed
	}

	payment := &domain.DebtPayment{
		ID:          s.genID.Generate().Int64(),
		CusName:     cusName,
		AmountPaid:  req.AmountPaid,
		PaymentDate: paymentDate,
		Note:        note,
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, s.db, payment); err != nil {
		return nil, err
	}

	resp := s.toResponse(payment)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toResponse(&item))
	}
	return resp, nil
}

// Outstanding merges the pending-order and payment rollups. Only
// customers still owing anything are returned.
func (s *Service) Outstanding(ctx context.Context) ([]domain.OutstandingResponse, error) {
	pending, err := s.repo.PendingOrderTotals(ctx, s.db)
	if err != nil {
		return nil, err
	}
	paid, err := s.repo.PaymentTotals(ctx, s.db)
	if err != nil {
		return nil, err
	}

	paidByName := make(map[string]float64, len(paid))
	for _, row := range paid {
		paidByName[row.CusName] = row.Total
	}

	resp := make([]domain.OutstandingResponse, 0, len(pending))
	for _, row := range pending {
		outstanding := row.Total - paidByName[row.CusName]
		if outstanding <= 0 {
			continue
		}
		resp = append(resp, domain.OutstandingResponse{
			CusName:     row.CusName,
			Pending:     row.Total,
			Paid:        paidByName[row.CusName],
			Outstanding: outstanding,
		})
	}

	sort.Slice(resp, func(i, j int) bool { return resp[i].CusName < resp[j].CusName })
	return resp, nil
}

func (s *Service) toResponse(p *domain.DebtPayment) domain.Response {
	return domain.Response{
		ID:          snowflake.ID(p.ID).String(),
		CusName:     p.CusName,
		AmountPaid:  p.AmountPaid,
		PaymentDate: p.PaymentDate,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}
