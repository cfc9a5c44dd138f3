package scans

import (
	"context"
	"fmt"
	"time"

	"github.com/angelamos/go-scan-client/apierr"
	"github.com/angelamos/go-scan-client/cache"
	"github.com/angelamos/go-scan-client/feedback"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// Cache scopes. A write invalidates the whole list scope rather than
// patching individual entries; the new or removed scan may belong in any
// cached page. Detail entries live in their own scope and are untouched by
// list invalidation.
const (
	ScopeList   = "scans:list"
	ScopeDetail = "scans:detail"

	listCacheKey     = "scans:list"
	defaultScansPath = "/scans"

	defaultStaleAfter = 5 * time.Minute
	defaultEvictAfter = 10 * time.Minute
)

// API is the slice of the transport layer this service needs.
type API interface {
	GetJSON(ctx context.Context, path string, out any) error
	PostJSON(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// Validators are the shape guards applied to server responses.
type Validators struct {
	List   func(*ScanList) bool
	Scan   func(*Scan) bool
	Create func(*Scan) bool
}

// Deps holds all collaborator dependencies for the Service.
type Deps struct {
	API       API
	Cache     *cache.Store
	Notifier  feedback.Notifier
	Navigator feedback.Navigator
}

// Service orchestrates scan reads and writes: cached List/Get, and
// Create/Delete with list-scope invalidation.
type Service struct {
	deps       Deps
	validators Validators
	scansPath  string
	staleAfter time.Duration
	evictAfter time.Duration
	flight     singleflight.Group
}

// Option defines a function type to modify the Service instance.
type Option func(*Service)

// WithEndpoint overrides the server path for the scans collection.
func WithEndpoint(scansPath string) Option {
	return func(s *Service) {
		s.scansPath = scansPath
	}
}

// WithCacheWindows overrides the freshness and retention windows applied to
// cached reads.
func WithCacheWindows(staleAfter, evictAfter time.Duration) Option {
	return func(s *Service) {
		s.staleAfter = staleAfter
		s.evictAfter = evictAfter
	}
}

// WithValidators overrides the default response shape guards. Nil fields
// keep their defaults.
func WithValidators(v Validators) Option {
	return func(s *Service) {
		if v.List != nil {
			s.validators.List = v.List
		}
		if v.Scan != nil {
			s.validators.Scan = v.Scan
		}
		if v.Create != nil {
			s.validators.Create = v.Create
		}
	}
}

// NewService initializes the scans Service with required dependencies.
func NewService(deps Deps, options ...Option) (*Service, error) {
	if deps.API == nil {
		return nil, errors.New("[scans.NewService] API is required")
	}
	if deps.Cache == nil {
		return nil, errors.New("[scans.NewService] Cache store is required")
	}
	if deps.Notifier == nil {
		return nil, errors.New("[scans.NewService] Notifier is required")
	}
	if deps.Navigator == nil {
		return nil, errors.New("[scans.NewService] Navigator is required")
	}

	s := &Service{
		deps: deps,
		validators: Validators{
			List:   ValidScanList,
			Scan:   ValidScan,
			Create: ValidScan,
		},
		scansPath:  defaultScansPath,
		staleAfter: defaultStaleAfter,
		evictAfter: defaultEvictAfter,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// List returns the scan collection, served from cache while fresh.
// Concurrent cold calls are coalesced into one network request; each caller
// still gets its own result or failure.
func (s *Service) List(ctx context.Context) (*ScanList, error) {
	if cached, ok := s.deps.Cache.Get(listCacheKey); ok {
		return cached.(*ScanList), nil
	}

	result, err, _ := s.flight.Do(listCacheKey, func() (any, error) {
		var list ScanList
		if err := s.deps.API.GetJSON(ctx, s.scansPath, &list); err != nil {
			return nil, err
		}
		if !s.validators.List(&list) {
			return nil, ErrInvalidListResponse
		}
		s.deps.Cache.Put(listCacheKey, ScopeList, &list, s.staleAfter, s.evictAfter)
		return &list, nil
	})
	if err != nil {
		return nil, s.fail(apierr.ContextListScans, err)
	}
	return result.(*ScanList), nil
}

// Get returns one scan by id, served from cache while fresh. A Get against
// a deleted id is expected to fail at the network layer once the cached
// entry expires; that failure propagates normally.
func (s *Service) Get(ctx context.Context, id int) (*Scan, error) {
	key := detailCacheKey(id)
	if cached, ok := s.deps.Cache.Get(key); ok {
		return cached.(*Scan), nil
	}

	result, err, _ := s.flight.Do(key, func() (any, error) {
		var scan Scan
		if err := s.deps.API.GetJSON(ctx, fmt.Sprintf("%s/%d", s.scansPath, id), &scan); err != nil {
			return nil, err
		}
		if !s.validators.Scan(&scan) {
			return nil, ErrInvalidScanResponse
		}
		s.deps.Cache.Put(key, ScopeDetail, &scan, s.staleAfter, s.evictAfter)
		return &scan, nil
	})
	if err != nil {
		return nil, s.fail(apierr.ContextGetScan, err)
	}
	return result.(*Scan), nil
}

// Create launches a new scan. On success every cached list entry is
// invalidated and the caller is navigated to the new scan's detail view.
// A failed create never touches the cache.
func (s *Service) Create(ctx context.Context, req CreateScanRequest) (*Scan, error) {
	var scan Scan
	if err := s.deps.API.PostJSON(ctx, s.scansPath, req, &scan); err != nil {
		return nil, s.fail(apierr.ContextCreateScan, err)
	}
	if !s.validators.Create(&scan) {
		return nil, s.fail(apierr.ContextCreateScan, ErrInvalidCreateResponse)
	}

	s.deps.Cache.Invalidate(ScopeList)
	s.deps.Notifier.Success("Scan completed successfully!")
	s.deps.Navigator.NavigateTo(DetailViewPath(scan.ID))
	return &scan, nil
}

// Delete removes a scan. On success every cached list entry is invalidated;
// the per-id detail entry is left to age out on its own (see the cache
// ownership notes in DESIGN.md). No navigation.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.deps.API.Delete(ctx, fmt.Sprintf("%s/%d", s.scansPath, id)); err != nil {
		return s.fail(apierr.ContextDeleteScan, err)
	}

	s.deps.Cache.Invalidate(ScopeList)
	s.deps.Notifier.Success("Scan deleted successfully!")
	return nil
}

// DetailViewPath is the client-side route for one scan's detail view.
func DetailViewPath(id int) string {
	return fmt.Sprintf("/scans/%d", id)
}

func detailCacheKey(id int) string {
	return fmt.Sprintf("scans:detail:%d", id)
}

// fail converts err into the single OperationError this operation surfaces
// and fires the one failure notification.
func (s *Service) fail(operation apierr.Context, err error) error {
	opErr := apierr.Translate(operation, err)
	s.deps.Notifier.Failure(opErr.Message)
	return opErr
}
