package service

import (
	"github.com/samber/lo"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/internal/repository"
)

// LookupService thin CRUD over the four lookup entities referenced by
// project junction sets.
type LookupService interface {
	CreateAgency(req *dto.CreateAgencyRequest) (*dto.AgencyResponse, error)
	ListAgencies() ([]*dto.AgencyResponse, error)
	UpdateAgency(id int64, req *dto.UpdateAgencyRequest) (*dto.AgencyResponse, error)
	DeleteAgency(id int64) error

	CreateLocation(req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	ListLocations() ([]*dto.LocationResponse, error)
	UpdateLocation(id int64, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	DeleteLocation(id int64) error

	CreateFundingSource(req *dto.CreateFundingSourceRequest) (*dto.FundingSourceResponse, error)
	ListFundingSources() ([]*dto.FundingSourceResponse, error)
	UpdateFundingSource(id int64, req *dto.UpdateFundingSourceRequest) (*dto.FundingSourceResponse, error)
	DeleteFundingSource(id int64) error

	CreateFocalArea(req *dto.CreateFocalAreaRequest) (*dto.FocalAreaResponse, error)
	ListFocalAreas() ([]*dto.FocalAreaResponse, error)
	UpdateFocalArea(id int64, req *dto.UpdateFocalAreaRequest) (*dto.FocalAreaResponse, error)
	DeleteFocalArea(id int64) error
}

type lookupService struct {
	agencyRepo        repository.AgencyRepository
	locationRepo      repository.LocationRepository
	fundingSourceRepo repository.FundingSourceRepository
	focalAreaRepo     repository.FocalAreaRepository
}

func NewLookupService(
	agencyRepo repository.AgencyRepository,
	locationRepo repository.LocationRepository,
	fundingSourceRepo repository.FundingSourceRepository,
	focalAreaRepo repository.FocalAreaRepository,
) LookupService {
	return &lookupService{
		agencyRepo:        agencyRepo,
		locationRepo:      locationRepo,
		fundingSourceRepo: fundingSourceRepo,
		focalAreaRepo:     focalAreaRepo,
	}
}

func (s *lookupService) CreateAgency(req *dto.CreateAgencyRequest) (*dto.AgencyResponse, error) {
	agency := &model.Agency{
		Name:        req.Name,
		Acronym:     req.Acronym,
		AgencyType:  req.AgencyType,
		Description: req.Description,
	}
	if err := s.agencyRepo.Create(agency); err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

func (s *lookupService) ListAgencies() ([]*dto.AgencyResponse, error) {
	agencies, err := s.agencyRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(agencies, func(a *model.Agency, _ int) *dto.AgencyResponse {
		return toAgencyResponse(a)
	}), nil
}

func (s *lookupService) UpdateAgency(id int64, req *dto.UpdateAgencyRequest) (*dto.AgencyResponse, error) {
	agency, err := s.agencyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.Acronym != nil {
		agency.Acronym = req.Acronym
	}
	if req.AgencyType != nil {
		agency.AgencyType = req.AgencyType
	}
	if req.Description != nil {
		agency.Description = req.Description
	}
	if err := s.agencyRepo.Update(agency); err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

func (s *lookupService) DeleteAgency(id int64) error {
	if _, err := s.agencyRepo.FindByID(id); err != nil {
		return err
	}
	return s.agencyRepo.Delete(id)
}

func (s *lookupService) CreateLocation(req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	location := &model.Location{
		Name:      req.Name,
		Region:    req.Region,
		Geocode:   req.Geocode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

func (s *lookupService) ListLocations() ([]*dto.LocationResponse, error) {
	locations, err := s.locationRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(locations, func(l *model.Location, _ int) *dto.LocationResponse {
		return toLocationResponse(l)
	}), nil
}

func (s *lookupService) UpdateLocation(id int64, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Region != nil {
		location.Region = req.Region
	}
	if req.Geocode != nil {
		location.Geocode = req.Geocode
	}
	if req.Latitude != nil {
		location.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = req.Longitude
	}
	if err := s.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

func (s *lookupService) DeleteLocation(id int64) error {
	if _, err := s.locationRepo.FindByID(id); err != nil {
		return err
	}
	return s.locationRepo.Delete(id)
}

func (s *lookupService) CreateFundingSource(req *dto.CreateFundingSourceRequest) (*dto.FundingSourceResponse, error) {
	source := &model.FundingSource{
		Name:       req.Name,
		SourceType: req.SourceType,
		Acronym:    req.Acronym,
	}
	if err := s.fundingSourceRepo.Create(source); err != nil {
		return nil, err
	}
	return toFundingSourceResponse(source), nil
}

func (s *lookupService) ListFundingSources() ([]*dto.FundingSourceResponse, error) {
	sources, err := s.fundingSourceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(sources, func(f *model.FundingSource, _ int) *dto.FundingSourceResponse {
		return toFundingSourceResponse(f)
	}), nil
}

func (s *lookupService) UpdateFundingSource(id int64, req *dto.UpdateFundingSourceRequest) (*dto.FundingSourceResponse, error) {
	source, err := s.fundingSourceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		source.Name = *req.Name
	}
	if req.SourceType != nil {
		source.SourceType = req.SourceType
	}
	if req.Acronym != nil {
		source.Acronym = req.Acronym
	}
	if err := s.fundingSourceRepo.Update(source); err != nil {
		return nil, err
	}
	return toFundingSourceResponse(source), nil
}

func (s *lookupService) DeleteFundingSource(id int64) error {
	if _, err := s.fundingSourceRepo.FindByID(id); err != nil {
		return err
	}
	return s.fundingSourceRepo.Delete(id)
}

func (s *lookupService) CreateFocalArea(req *dto.CreateFocalAreaRequest) (*dto.FocalAreaResponse, error) {
	area := &model.FocalArea{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.focalAreaRepo.Create(area); err != nil {
		return nil, err
	}
	return toFocalAreaResponse(area), nil
}

func (s *lookupService) ListFocalAreas() ([]*dto.FocalAreaResponse, error) {
	areas, err := s.focalAreaRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(areas, func(f *model.FocalArea, _ int) *dto.FocalAreaResponse {
		return toFocalAreaResponse(f)
	}), nil
}

func (s *lookupService) UpdateFocalArea(id int64, req *dto.UpdateFocalAreaRequest) (*dto.FocalAreaResponse, error) {
	area, err := s.focalAreaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Description != nil {
		area.Description = req.Description
	}
	if err := s.focalAreaRepo.Update(area); err != nil {
		return nil, err
	}
	return toFocalAreaResponse(area), nil
}

func (s *lookupService) DeleteFocalArea(id int64) error {
	if _, err := s.focalAreaRepo.FindByID(id); err != nil {
		return err
	}
	return s.focalAreaRepo.Delete(id)
}

func toAgencyResponse(a *model.Agency) *dto.AgencyResponse {
	return &dto.AgencyResponse{
		ID:          a.ID,
		Name:        a.Name,
		Acronym:     a.Acronym,
		AgencyType:  a.AgencyType,
		Description: a.Description,
	}
}

func toLocationResponse(l *model.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Region:    l.Region,
		Geocode:   l.Geocode,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

func toFundingSourceResponse(f *model.FundingSource) *dto.FundingSourceResponse {
	return &dto.FundingSourceResponse{
		ID:         f.ID,
		Name:       f.Name,
		SourceType: f.SourceType,
		Acronym:    f.Acronym,
	}
}

func toFocalAreaResponse(f *model.FocalArea) *dto.FocalAreaResponse {
	return &dto.FocalAreaResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
	}
}
