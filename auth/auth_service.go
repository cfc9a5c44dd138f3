package auth

import (
	"context"

	"github.com/angelamos/go-scan-client/apierr"
	"github.com/angelamos/go-scan-client/feedback"
	"github.com/angelamos/go-scan-client/session"
	"github.com/pkg/errors"
)

// Client-side routes the service navigates to after an operation.
const (
	LoginViewPath = "/login"
	HomeViewPath  = "/"
)

// Default server endpoints. Overridable via WithEndpoints; paths are
// configuration, not server identity.
const (
	defaultRegisterPath = "/auth/register"
	defaultLoginPath    = "/auth/login"
)

// API is the slice of the transport layer this service needs.
type API interface {
	PostJSON(ctx context.Context, path string, body, out any) error
}

// Validators are the shape guards applied to server responses. Any guard
// returning false turns the operation into a contract failure.
type Validators struct {
	Login    func(*LoginResponse) bool
	Register func(*RegisterResponse) bool
}

// Deps holds all collaborator dependencies for the Service.
type Deps struct {
	API       API             // Transport for the auth endpoints
	Sessions  *session.Store  // Owner of the single process-wide session
	Notifier  feedback.Notifier
	Navigator feedback.Navigator
}

// Service orchestrates the session lifecycle: register, login, logout.
type Service struct {
	deps         Deps
	validators   Validators
	registerPath string
	loginPath    string
}

// Option defines a function type to modify the Service instance.
type Option func(*Service)

// WithValidators overrides the default response shape guards. Nil fields
// keep their defaults.
func WithValidators(v Validators) Option {
	return func(s *Service) {
		if v.Login != nil {
			s.validators.Login = v.Login
		}
		if v.Register != nil {
			s.validators.Register = v.Register
		}
	}
}

// WithEndpoints overrides the server paths for register and login.
func WithEndpoints(registerPath, loginPath string) Option {
	return func(s *Service) {
		s.registerPath = registerPath
		s.loginPath = loginPath
	}
}

// NewService initializes the auth Service with required dependencies.
func NewService(deps Deps, options ...Option) (*Service, error) {
	if deps.API == nil {
		return nil, errors.New("[auth.NewService] API is required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("[auth.NewService] Sessions store is required")
	}
	if deps.Notifier == nil {
		return nil, errors.New("[auth.NewService] Notifier is required")
	}
	if deps.Navigator == nil {
		return nil, errors.New("[auth.NewService] Navigator is required")
	}

	s := &Service{
		deps: deps,
		validators: Validators{
			Login:    ValidLoginResponse,
			Register: ValidRegisterResponse,
		},
		registerPath: defaultRegisterPath,
		loginPath:    defaultLoginPath,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Register creates a new account. On success it notifies and navigates to
// the login view; the session is never touched. On failure the translated
// message is notified and no navigation happens.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	var resp RegisterResponse
	if err := s.deps.API.PostJSON(ctx, s.registerPath, req, &resp); err != nil {
		return s.fail(apierr.ContextRegister, err)
	}
	if !s.validators.Register(&resp) {
		return s.fail(apierr.ContextRegister, ErrInvalidRegisterResponse)
	}

	s.deps.Notifier.Success("Account created! Please login.")
	s.deps.Navigator.NavigateTo(LoginViewPath)
	return nil
}

// Login authenticates and establishes the session. The server response
// carries only the credential, so the session is synthesized from the
// request email and the issued token. A login while already authenticated
// simply replaces the session; gating that is the route guard's job, not
// this service's. On failure the existing session is left untouched.
func (s *Service) Login(ctx context.Context, req LoginRequest) (session.Session, error) {
	var resp LoginResponse
	if err := s.deps.API.PostJSON(ctx, s.loginPath, req, &resp); err != nil {
		return session.Session{}, s.fail(apierr.ContextLogin, err)
	}
	if !s.validators.Login(&resp) {
		return session.Session{}, s.fail(apierr.ContextLogin, ErrInvalidLoginResponse)
	}

	sess := s.deps.Sessions.Set(0, req.Email, resp.AccessToken)
	s.deps.Notifier.Success("Login successful!")
	s.deps.Navigator.NavigateTo(HomeViewPath)
	return sess, nil
}

// Logout is a local state transition, not a network call, and cannot fail.
// The resource cache is deliberately left alone; see the cache ownership
// notes in DESIGN.md.
func (s *Service) Logout() {
	s.deps.Sessions.Clear()
	s.deps.Notifier.Success("Logged out successfully")
	s.deps.Navigator.NavigateTo(LoginViewPath)
}

// fail converts err into the single OperationError this operation surfaces
// and fires the one failure notification.
func (s *Service) fail(operation apierr.Context, err error) error {
	opErr := apierr.Translate(operation, err)
	s.deps.Notifier.Failure(opErr.Message)
	return opErr
}
