package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type projectListResponse struct {
	Success  bool `json:"success"`
	Projects []struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Month       string `json:"month"`
		FlowerImage string `json:"flowerImage"`
		CreatedAgo  string `json:"createdAgo"`
	} `json:"projects"`
}

func (s *HandlerTestSuite) listProjects(cookies []*http.Cookie) projectListResponse {
	w := s.get("/projects", cookies)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp projectListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *HandlerTestSuite) TestDesignForm_ShowsAccountAndMonths() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.get("/design", cookies)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "rosa")
	s.Contains(w.Body.String(), "June")
}

func (s *HandlerTestSuite) TestCreateProject_ThemedAsset() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.postForm("/design", url.Values{
		"name":  {"Lily"},
		"month": {"June"},
	}, cookies)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/projects", w.Header().Get("Location"))

	resp := s.listProjects(cookies)
	s.Require().Len(resp.Projects, 1)
	s.Equal("Lily", resp.Projects[0].Name)
	s.Equal("static/flowers/June.png", resp.Projects[0].FlowerImage)
	s.NotEmpty(resp.Projects[0].CreatedAgo)
}

func (s *HandlerTestSuite) TestCreateProject_UnknownMonthRejected() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.postForm("/design", url.Values{
		"name":  {"Lily"},
		"month": {"Xyz"},
	}, cookies)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateProject_MissingAssetFallsBack() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.postForm("/design", url.Values{
		"name":  {"Daisy"},
		"month": {"March"},
	}, cookies)
	s.Equal(http.StatusSeeOther, w.Code)

	resp := s.listProjects(cookies)
	s.Require().Len(resp.Projects, 1)
	s.Equal("static/flowers/default.png", resp.Projects[0].FlowerImage)
}

func (s *HandlerTestSuite) TestCreateProject_EmptyName() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.postForm("/design", url.Values{
		"name":  {"   "},
		"month": {"June"},
	}, cookies)
	s.Equal(http.StatusBadRequest, w.Code)

	// no row created
	resp := s.listProjects(cookies)
	s.Empty(resp.Projects)
}

func (s *HandlerTestSuite) TestListProjects_NewestFirst() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	for _, name := range []string{"first", "second", "third"} {
		w := s.postForm("/design", url.Values{
			"name":  {name},
			"month": {"June"},
		}, cookies)
		s.Require().Equal(http.StatusSeeOther, w.Code)
		time.Sleep(10 * time.Millisecond)
	}

	resp := s.listProjects(cookies)
	s.Require().Len(resp.Projects, 3)
	s.Equal("third", resp.Projects[0].Name)
	s.Equal("first", resp.Projects[2].Name)
}

func (s *HandlerTestSuite) TestListProjects_OwnRecordsOnly() {
	s.register("rosa", "rosa@example.com", "pw")
	s.register("violet", "violet@example.com", "pw")

	rosaCookies := s.login("rosa", "pw")
	violetCookies := s.login("violet", "pw")

	w := s.postForm("/design", url.Values{"name": {"rosas"}, "month": {"June"}}, rosaCookies)
	s.Require().Equal(http.StatusSeeOther, w.Code)

	resp := s.listProjects(violetCookies)
	s.Empty(resp.Projects)
}

func (s *HandlerTestSuite) TestCrossUserAccessDenied() {
	s.register("rosa", "rosa@example.com", "pw")
	s.register("violet", "violet@example.com", "pw")
	rosaCookies := s.login("rosa", "pw")
	violetCookies := s.login("violet", "pw")

	w := s.postForm("/design", url.Values{"name": {"rosas"}, "month": {"June"}}, rosaCookies)
	s.Require().Equal(http.StatusSeeOther, w.Code)

	resp := s.listProjects(rosaCookies)
	s.Require().Len(resp.Projects, 1)
	id := resp.Projects[0].ID

	// violet guesses rosa's project id
	w = s.get(fmt.Sprintf("/edit/%d", id), violetCookies)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.postForm(fmt.Sprintf("/edit/%d", id), url.Values{"name": {"stolen"}, "month": {"May"}}, violetCookies)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.postForm(fmt.Sprintf("/delete/%d", id), nil, violetCookies)
	s.Equal(http.StatusNotFound, w.Code)

	// rosa's design is untouched
	resp = s.listProjects(rosaCookies)
	s.Require().Len(resp.Projects, 1)
	s.Equal("rosas", resp.Projects[0].Name)
}

func (s *HandlerTestSuite) TestUpdateProject_RecomputesImagePath() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.postForm("/design", url.Values{"name": {"Lily"}, "month": {"June"}}, cookies)
	s.Require().Equal(http.StatusSeeOther, w.Code)

	resp := s.listProjects(cookies)
	s.Require().Len(resp.Projects, 1)
	id := resp.Projects[0].ID

	w = s.postForm(fmt.Sprintf("/edit/%d", id), url.Values{"name": {"Rose"}, "month": {"March"}}, cookies)
	s.Equal(http.StatusSeeOther, w.Code)

	resp = s.listProjects(cookies)
	s.Require().Len(resp.Projects, 1)
	s.Equal("Rose", resp.Projects[0].Name)
	s.Equal("March", resp.Projects[0].Month)
	s.Equal("static/flowers/default.png", resp.Projects[0].FlowerImage)
}

func (s *HandlerTestSuite) TestDeleteProject() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.postForm("/design", url.Values{"name": {"Lily"}, "month": {"June"}}, cookies)
	s.Require().Equal(http.StatusSeeOther, w.Code)

	resp := s.listProjects(cookies)
	s.Require().Len(resp.Projects, 1)

	w = s.postForm(fmt.Sprintf("/delete/%d", resp.Projects[0].ID), nil, cookies)
	s.Equal(http.StatusSeeOther, w.Code)

	resp = s.listProjects(cookies)
	s.Empty(resp.Projects)

	// row really gone from the store
	projects, err := s.db.ListProjectsByUser(context.Background(), 1)
	s.Require().NoError(err)
	s.Empty(projects)
}

func (s *HandlerTestSuite) TestGetProject_InvalidID() {
	s.register("rosa", "rosa@example.com", "pw")
	cookies := s.login("rosa", "pw")

	w := s.get("/edit/not-a-number", cookies)
	s.Equal(http.StatusBadRequest, w.Code)
}
