package handler

import (
	"net/http"
	"net/url"
)

func (s *HandlerTestSuite) TestRegister_MissingFields() {
	w := s.postForm("/register", url.Values{
		"username": {"rosa"},
		"email":    {""},
		"password": {"pw"},
	}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRegister_DuplicateUsername() {
	s.register("rosa", "rosa@example.com", "pw")

	w := s.postForm("/register", url.Values{
		"username": {"rosa"},
		"email":    {"second@example.com"},
		"password": {"pw"},
	}, nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestRegister_DuplicateEmail() {
	s.register("rosa", "rosa@example.com", "pw")

	w := s.postForm("/register", url.Values{
		"username": {"violet"},
		"email":    {"rosa@example.com"},
		"password": {"pw"},
	}, nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestLogin_RegisteredPasswordOnly() {
	s.register("rosa", "rosa@example.com", "petal-pw")

	w := s.postForm("/login", url.Values{
		"username": {"rosa"},
		"password": {"wrong"},
	}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.postForm("/login", url.Values{
		"username": {"rosa"},
		"password": {"petal-pw"},
	}, nil)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/design", w.Header().Get("Location"))
}

func (s *HandlerTestSuite) TestLogin_UnknownUserSameError() {
	w := s.postForm("/login", url.Values{
		"username": {"nobody"},
		"password": {"pw"},
	}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Contains(w.Body.String(), "invalid username or password")
}

func (s *HandlerTestSuite) TestLogout_EndsSession() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.get("/logout", cookies)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))

	// the cleared cookie replaces the old one in a real browser
	cleared := w.Result().Cookies()
	w = s.get("/projects", cleared)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}

func (s *HandlerTestSuite) TestHome_RedirectsBySession() {
	w := s.get("/", nil)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))

	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w = s.get("/", cookies)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/design", w.Header().Get("Location"))
}

func (s *HandlerTestSuite) TestProtectedRoute_RequiresLogin() {
	w := s.get("/projects", nil)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}
