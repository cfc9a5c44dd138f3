package auth_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/angelamos/go-scan-client/apierr"
	"github.com/angelamos/go-scan-client/auth"
	"github.com/angelamos/go-scan-client/feedback/feedbackfakes"
	"github.com/angelamos/go-scan-client/session"
	"github.com/stretchr/testify/require"
)

const (
	testUserEmail    = "john.doe@example.com"
	testUserPassword = "password123"
	testAccessToken  = "tok-abc123"
)

// fakeAPI serves one canned response (or error) and records the paths hit.
type fakeAPI struct {
	paths    []string
	response any
	err      error
}

func (f *fakeAPI) PostJSON(_ context.Context, path string, _, out any) error {
	f.paths = append(f.paths, path)
	if f.err != nil {
		return f.err
	}
	if f.response != nil && out != nil {
		encoded, err := json.Marshal(f.response)
		if err != nil {
			return err
		}
		return json.Unmarshal(encoded, out)
	}
	return nil
}

// testFixture holds all test dependencies
type testFixture struct {
	api       *fakeAPI
	sessions  *session.Store
	notifier  *feedbackfakes.FakeNotifier
	navigator *feedbackfakes.FakeNavigator
	service   *auth.Service
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		api:       &fakeAPI{},
		sessions:  session.NewStore(),
		notifier:  feedbackfakes.NewFakeNotifier(),
		navigator: feedbackfakes.NewFakeNavigator(),
	}

	service, err := auth.NewService(auth.Deps{
		API:       f.api,
		Sessions:  f.sessions,
		Notifier:  f.notifier,
		Navigator: f.navigator,
	})
	require.NoError(t, err)
	f.service = service
	return f
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	deps := auth.Deps{
		API:       &fakeAPI{},
		Sessions:  session.NewStore(),
		Notifier:  feedbackfakes.NewFakeNotifier(),
		Navigator: feedbackfakes.NewFakeNavigator(),
	}

	missing := []func(d auth.Deps) auth.Deps{
		func(d auth.Deps) auth.Deps { d.API = nil; return d },
		func(d auth.Deps) auth.Deps { d.Sessions = nil; return d },
		func(d auth.Deps) auth.Deps { d.Notifier = nil; return d },
		func(d auth.Deps) auth.Deps { d.Navigator = nil; return d },
	}
	for _, strip := range missing {
		_, err := auth.NewService(strip(deps))
		require.Error(t, err)
	}
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	f := setupTestFixture(t)
	f.api.response = auth.LoginResponse{AccessToken: testAccessToken}

	before := time.Now()
	sess, err := f.service.Login(context.Background(), auth.LoginRequest{Email: testUserEmail, Password: testUserPassword})
	require.NoError(t, err)

	require.Equal(t, testUserEmail, sess.Email)
	require.Equal(t, testAccessToken, sess.Token)
	require.True(t, sess.IsActive)
	require.False(t, sess.CreatedAt.Before(before))

	stored, ok := f.sessions.Get()
	require.True(t, ok)
	require.Equal(t, sess, stored)

	require.Equal(t, []feedbackfakes.Notification{{Message: "Login successful!", Success: true}}, f.notifier.Notifications())
	require.Equal(t, []string{auth.HomeViewPath}, f.navigator.Paths())
	require.Equal(t, []string{"/auth/login"}, f.api.paths)
}

func TestLoginServerRejectionLeavesSessionUntouched(t *testing.T) {
	f := setupTestFixture(t)
	f.api.err = &apierr.APIError{StatusCode: 401, Detail: "Invalid credentials"}

	_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: testUserEmail, Password: "wrong"})
	require.Error(t, err)

	opErr, ok := err.(*apierr.OperationError)
	require.True(t, ok)
	require.Equal(t, "Invalid credentials", opErr.Message)
	require.Equal(t, apierr.ContextLogin, opErr.Context)

	_, ok = f.sessions.Get()
	require.False(t, ok)
	require.Equal(t, []feedbackfakes.Notification{{Message: "Invalid credentials", Success: false}}, f.notifier.Notifications())
	require.Empty(t, f.navigator.Paths())
}

func TestLoginContractFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.api.response = auth.LoginResponse{AccessToken: ""}

	_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: testUserEmail, Password: testUserPassword})
	require.EqualError(t, err, "invalid login response")

	_, ok := f.sessions.Get()
	require.False(t, ok)
	require.Equal(t, []feedbackfakes.Notification{{Message: "invalid login response", Success: false}}, f.notifier.Notifications())
	require.Empty(t, f.navigator.Paths())
}

func TestLoginWhileAuthenticatedReplacesSession(t *testing.T) {
	f := setupTestFixture(t)
	f.sessions.Set(0, "old@example.com", "old-token")
	f.api.response = auth.LoginResponse{AccessToken: testAccessToken}

	_, err := f.service.Login(context.Background(), auth.LoginRequest{Email: testUserEmail, Password: testUserPassword})
	require.NoError(t, err)

	stored, ok := f.sessions.Get()
	require.True(t, ok)
	require.Equal(t, testUserEmail, stored.Email)
	require.Equal(t, testAccessToken, stored.Token)
}

func TestRegisterSuccess(t *testing.T) {
	f := setupTestFixture(t)
	f.api.response = auth.RegisterResponse{ID: 12, Email: testUserEmail, IsActive: true, CreatedAt: time.Now()}

	err := f.service.Register(context.Background(), auth.RegisterRequest{Email: testUserEmail, Password: testUserPassword})
	require.NoError(t, err)

	// Registration never touches the session.
	_, ok := f.sessions.Get()
	require.False(t, ok)

	require.Equal(t, []feedbackfakes.Notification{{Message: "Account created! Please login.", Success: true}}, f.notifier.Notifications())
	require.Equal(t, []string{auth.LoginViewPath}, f.navigator.Paths())
	require.Equal(t, []string{"/auth/register"}, f.api.paths)
}

func TestRegisterContractFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.api.response = auth.RegisterResponse{ID: 0}

	err := f.service.Register(context.Background(), auth.RegisterRequest{Email: testUserEmail, Password: testUserPassword})
	require.EqualError(t, err, "invalid register response")
	require.Empty(t, f.navigator.Paths())
}

func TestRegisterServerRejection(t *testing.T) {
	f := setupTestFixture(t)
	f.api.err = &apierr.APIError{StatusCode: 409, Detail: "Email already registered"}

	err := f.service.Register(context.Background(), auth.RegisterRequest{Email: testUserEmail, Password: testUserPassword})
	require.EqualError(t, err, "Email already registered")
	require.Equal(t, []feedbackfakes.Notification{{Message: "Email already registered", Success: false}}, f.notifier.Notifications())
	require.Empty(t, f.navigator.Paths())
}

func TestLogoutClearsSessionAndNavigates(t *testing.T) {
	f := setupTestFixture(t)
	f.sessions.Set(0, testUserEmail, testAccessToken)

	f.service.Logout()

	_, ok := f.sessions.Get()
	require.False(t, ok)
	require.Equal(t, []feedbackfakes.Notification{{Message: "Logged out successfully", Success: true}}, f.notifier.Notifications())
	require.Equal(t, []string{auth.LoginViewPath}, f.navigator.Paths())
}

func TestLogoutWithoutSessionStillNotifies(t *testing.T) {
	f := setupTestFixture(t)

	f.service.Logout()

	require.Equal(t, []feedbackfakes.Notification{{Message: "Logged out successfully", Success: true}}, f.notifier.Notifications())
	require.Equal(t, []string{auth.LoginViewPath}, f.navigator.Paths())
}

func TestWithEndpointsOverridesPaths(t *testing.T) {
	f := setupTestFixture(t)
	service, err := auth.NewService(auth.Deps{
		API:       f.api,
		Sessions:  f.sessions,
		Notifier:  f.notifier,
		Navigator: f.navigator,
	}, auth.WithEndpoints("/api/v2/signup", "/api/v2/signin"))
	require.NoError(t, err)

	f.api.response = auth.LoginResponse{AccessToken: testAccessToken}
	_, err = service.Login(context.Background(), auth.LoginRequest{Email: testUserEmail, Password: testUserPassword})
	require.NoError(t, err)
	require.Equal(t, []string{"/api/v2/signin"}, f.api.paths)
}

func TestWithValidatorsOverride(t *testing.T) {
	f := setupTestFixture(t)
	service, err := auth.NewService(auth.Deps{
		API:       f.api,
		Sessions:  f.sessions,
		Notifier:  f.notifier,
		Navigator: f.navigator,
	}, auth.WithValidators(auth.Validators{
		Login: func(*auth.LoginResponse) bool { return false },
	}))
	require.NoError(t, err)

	f.api.response = auth.LoginResponse{AccessToken: testAccessToken}
	_, err = service.Login(context.Background(), auth.LoginRequest{Email: testUserEmail, Password: testUserPassword})
	require.EqualError(t, err, "invalid login response")
}
