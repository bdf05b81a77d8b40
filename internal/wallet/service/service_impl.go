package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"github.com/piadesu/attn-store/internal/config"
	"github.com/piadesu/attn-store/internal/wallet/domain"
	"github.com/piadesu/attn-store/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Philippine mobile numbers as the shop writes them down.
var mobilePattern = regexp.MustCompile(`^09\d{9}$`)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Fees  *config.FeeScheduleHolder
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	fees  *config.FeeScheduleHolder
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("wallet.service"),
		genID: p.GenID,
		fees:  p.Fees,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	app := strings.TrimSpace(req.App)
	if app == "" {
		return nil, domain.ErrInvalidApp
	}

	direction := strings.TrimSpace(req.Direction)
	if !domain.ValidDirection(direction) {
		return nil, domain.ErrInvalidDirection
	}

	accountName := strings.TrimSpace(req.AccountName)
	if accountName == "" {
		return nil, domain.ErrInvalidName
	}

	mobile := strings.TrimSpace(req.MobileNumber)
	if !mobilePattern.MatchString(mobile) {
		return nil, domain.ErrInvalidMobile
	}

	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()
	entryDate := now
	if req.EntryDate != nil && strings.TrimSpace(*req.EntryDate) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*req.EntryDate))
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		entryDate = parsed
	}

	// The service charge always comes from the schedule; a fee sent by
	// the client is ignored.
	fee := s.fees.Get().FeeFor(req.Amount)

	entry := &domain.WalletEntry{
		ID:           s.genID.Generate().Int64(),
		Reference:    ulid.Make().String(),
		App:          app,
		Direction:    direction,
		AccountName:  accountName,
		MobileNumber: mobile,
		Amount:       req.Amount,
		Fee:          fee,
		Total:        req.Amount + fee,
		EntryDate:    entryDate,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, s.db, entry); err != nil {
		return nil, err
	}

	s.log.Info("wallet entry recorded",
		zap.String("reference", entry.Reference),
		zap.String("direction", entry.Direction),
		zap.Float64("amount", entry.Amount),
		zap.Float64("fee", entry.Fee),
	)

	resp := s.toResponse(entry)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	if direction := strings.TrimSpace(req.Direction); direction != "" && !domain.ValidDirection(direction) {
		return nil, domain.ErrInvalidDirection
	}

	size := req.Page.PageSize
	if size <= 0 {
		size = 10
	}
	if size > 250 {
		size = 250
	}

	items, err := s.repo.List(ctx, s.db, req)
	if err != nil {
		return nil, err
	}

	// The repository fetches one row past the page size so we can tell
	// whether another page exists.
	pageInfo := &pagination.PageInfo{}
	if len(items) > size {
		items = items[:size]
		pageInfo.HasMore = true
	}
	if len(items) > 0 {
		last := items[len(items)-1]
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        snowflake.ID(last.ID).String(),
			CreatedAt: last.CreatedAt.Format(time.RFC3339Nano),
		})
		if err == nil && pageInfo.HasMore {
			pageInfo.NextPageToken = token
		}
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toResponse(&item))
	}
	return &domain.ListResponse{Entries: resp, PageInfo: pageInfo}, nil
}

func (s *Service) toResponse(e *domain.WalletEntry) domain.Response {
	return domain.Response{
		ID:           snowflake.ID(e.ID).String(),
		Reference:    e.Reference,
		App:          e.App,
		Direction:    e.Direction,
		AccountName:  e.AccountName,
		MobileNumber: e.MobileNumber,
		Amount:       e.Amount,
		Fee:          e.Fee,
		Total:        e.Total,
		EntryDate:    e.EntryDate,
		CreatedAt:    e.CreatedAt,
	}
}
