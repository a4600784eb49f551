package simpledi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centraunit/simpledi"
	"github.com/centraunit/simpledi/mock"
	"github.com/stretchr/testify/suite"
)

type ContextTestSuite struct {
	suite.Suite
	c *simpledi.Container
}

func (s *ContextTestSuite) SetupTest() {
	s.c = simpledi.New()
	s.Require().NoError(mock.DeclareAll(s.c))
}

func (s *ContextTestSuite) TestContainerRoundTrip() {
	ctx := simpledi.WithContainer(context.Background(), s.c)

	c, ok := simpledi.FromContext(ctx)
	s.True(ok)
	s.Same(s.c, c)
}

func (s *ContextTestSuite) TestMissingContainer() {
	c, ok := simpledi.FromContext(context.Background())
	s.False(ok)
	s.Nil(c)

	provider, err := simpledi.ProviderFromContext[mock.ProfileDAO](context.Background())
	s.NoError(err)
	s.Nil(provider)
}

func (s *ContextTestSuite) TestProviderFromContext() {
	s.Require().NoError(simpledi.BindSingleton[mock.ProfileDAO, *mock.InMemoryProfileDAO](s.c))
	ctx := simpledi.WithContainer(context.Background(), s.c)

	provider, err := simpledi.ProviderFromContext[mock.ProfileDAO](ctx)
	s.Require().NoError(err)
	s.Require().NotNil(provider)

	direct, err := simpledi.Resolve[mock.ProfileDAO](s.c)
	s.Require().NoError(err)
	s.Same(direct, provider.MustGet())
}

func (s *ContextTestSuite) TestNilParentContext() {
	//nolint:staticcheck // nil parent is accepted on purpose
	ctx := simpledi.WithContainer(nil, s.c)
	c, ok := simpledi.FromContext(ctx)
	s.True(ok)
	s.Same(s.c, c)
}

// containerMiddleware attaches c to every request context.
func containerMiddleware(c *simpledi.Container, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(simpledi.WithContainer(r.Context(), c)))
	})
}

func (s *ContextTestSuite) TestRequestHandlers() {
	s.Require().NoError(simpledi.BindSingleton[mock.ProfileDAO, *mock.InMemoryProfileDAO](s.c))
	s.Require().NoError(simpledi.Bind[mock.TestDao, *mock.InMemoryTestDao](s.c))

	var profiles []mock.ProfileDAO
	var tests []mock.TestDao
	handler := containerMiddleware(s.c, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileProvider, err := simpledi.ProviderFromContext[mock.ProfileDAO](r.Context())
		if err != nil || profileProvider == nil {
			http.Error(w, "no profile provider", http.StatusInternalServerError)
			return
		}
		testProvider, err := simpledi.ProviderFromContext[mock.TestDao](r.Context())
		if err != nil || testProvider == nil {
			http.Error(w, "no test provider", http.StatusInternalServerError)
			return
		}
		profiles = append(profiles, profileProvider.MustGet())
		tests = append(tests, testProvider.MustGet())
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
		s.Equal(http.StatusOK, rec.Code)
	}

	s.Require().Len(profiles, 3)
	s.Same(profiles[0], profiles[1])
	s.Same(profiles[1], profiles[2])

	s.Require().Len(tests, 3)
	s.NotSame(tests[0], tests[1])
	s.NotSame(tests[1], tests[2])
}

func TestContextSuite(t *testing.T) {
	suite.Run(t, new(ContextTestSuite))
}
