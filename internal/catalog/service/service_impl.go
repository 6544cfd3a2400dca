package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/configuration"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("catalog.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	title := strings.TrimSpace(req.Title)
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &domain.Product{
		ID:                 s.genID.Generate(),
		Title:              title,
		Slug:               slug.Make(title),
		Category:           string(configuration.ParseCategory(req.Category)),
		NetPriceRs:         req.NetPriceRs,
		FabricRequirements: datatypes.NewJSONType(req.FabricRequirements),
		Metadata:           req.Metadata,
		Active:             active,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Error("create product", zap.String("slug", product.Slug), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	product, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("find product", zap.String("id", id), zap.Error(err))
		return nil, domain.ErrProductNotFound
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *Service) GetBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	product, err := s.repo.FindBySlug(ctx, productSlug)
	if err != nil {
		s.log.Error("find product by slug", zap.String("slug", productSlug), zap.Error(err))
		return nil, domain.ErrProductNotFound
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}
