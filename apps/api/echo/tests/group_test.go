package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jnedu/classroom2030/core/group"
	testutil "github.com/jnedu/classroom2030/tests"
)

var (
	errInvalidPassword = httpErr{Error: "비밀번호가 일치하지 않습니다."}
	errGroupNotFound   = httpErr{Error: "research group not found"}

	fieldRequired = "this field is required"
)

func Test_groupApi_query(t *testing.T) {
	app, grpRepo, _ := newApp(t)

	now := time.Now()
	g1 := testutil.CreateGroup(t, grpRepo, "첫 연구회", "d", "h", "l", "pwd", now.Add(-2*time.Hour))
	g2 := testutil.CreateGroup(t, grpRepo, "둘째 연구회", "d", "h", "l", "pwd", now.Add(-1*time.Hour))
	g3 := testutil.CreateGroup(t, grpRepo, "셋째 연구회", "d", "h", "l", "pwd", now)

	req, rec := newRequest(http.MethodGet, "/api/research-groups")
	app.ServeHTTP(rec, req)

	// newest first
	tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t, g3, g2, g1)}
	checkCodeAndData(t, tt, rec)

	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("password hash leaked: %v", rec.Body.String())
	}
}

func Test_groupApi_create(t *testing.T) {
	app, grpRepo, _ := newApp(t)

	t.Run("missing fields", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/api/research-groups", []byte(`{}`))
		app.ServeHTTP(rec, req)

		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"name":        fieldRequired,
				"description": fieldRequired,
				"how_to_join": fieldRequired,
				"docs_link":   fieldRequired,
				"password":    fieldRequired,
			}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("missing docs link under either convention", func(t *testing.T) {
		// howToJoin satisfies the legacy convention but no docs link is
		// present in either form
		body := []byte(`{
			"name": "연구회",
			"description": "설명",
			"howToJoin": "이메일로 문의",
			"password": "pwd123"
		}`)
		req, rec := newRequest(http.MethodPost, "/api/research-groups", body)
		app.ServeHTTP(rec, req)

		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"docs_link": fieldRequired}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("snake_case body", func(t *testing.T) {
		body := []byte(`{
			"name": "미래교실 연구회",
			"description": "에듀테크 수업 사례를 나눕니다",
			"how_to_join": "단체 채팅방으로 문의",
			"docs_link": "https://docs.example.com/future",
			"password": "pwd123"
		}`)
		req, rec := newRequest(http.MethodPost, "/api/research-groups", body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %v", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var created group.Group
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if created.ID == "" {
			t.Error("no id assigned")
		}
		if created.Name != "미래교실 연구회" || created.HowToJoin != "단체 채팅방으로 문의" {
			t.Errorf("created = %+v", created)
		}
		if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
			t.Errorf("timestamps not set: %+v", created)
		}
		if strings.Contains(rec.Body.String(), "password") {
			t.Errorf("password hash leaked: %v", rec.Body.String())
		}

		// the submitted password is what protects the record
		hash, err := grpRepo.GetGroupPasswordHash(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("GetGroupPasswordHash(): %v", err)
		}
		if hash != group.HashPassword("pwd123") {
			t.Errorf("stored hash = %v", hash)
		}
	})

	t.Run("name already taken", func(t *testing.T) {
		body := []byte(`{
			"name": "미래교실 연구회",
			"description": "다른 설명",
			"how_to_join": "다른 안내",
			"docs_link": "https://docs.example.com/other",
			"password": "pwd456"
		}`)
		req, rec := newRequest(http.MethodPost, "/api/research-groups", body)
		app.ServeHTTP(rec, req)

		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"name": "a research group with this name already exists"}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("camelCase body", func(t *testing.T) {
		body := []byte(`{
			"name": "미래교실 연구회 2",
			"description": "설명",
			"howToJoin": "이메일로 문의",
			"docsLink": "https://docs.example.com/legacy",
			"password": "pwd123"
		}`)
		req, rec := newRequest(http.MethodPost, "/api/research-groups", body)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %v", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var created group.Group
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if created.HowToJoin != "이메일로 문의" || created.DocsLink != "https://docs.example.com/legacy" {
			t.Errorf("legacy field names not mapped: %+v", created)
		}
	})
}

func Test_groupApi_retrieve(t *testing.T) {
	app, grpRepo, _ := newApp(t)

	grp := testutil.CreateGroup(t, grpRepo, "연구회", "설명", "가입 안내", "https://docs.example.com", "pwd123")

	tests := []httpTest{
		{
			name: "found", path: "/api/research-groups/" + grp.ID,
			wantCode: http.StatusOK, wantData: marchallObj(t, grp),
		},
		{
			name: "not found", path: "/api/research-groups/nope",
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errGroupNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_groupApi_update(t *testing.T) {
	app, grpRepo, _ := newApp(t)

	grp := testutil.CreateGroup(t, grpRepo, "연구회", "설명", "가입 안내", "https://docs.example.com", "pwd123")
	body := func(pwd string) []byte {
		return marchallObj(t, map[string]string{
			"name":        "연구회 (개편)",
			"description": "새 설명",
			"how_to_join": "새 가입 안내",
			"docs_link":   "https://docs.example.com/v2",
			"password":    pwd,
		})
	}

	tests := []httpTest{
		{
			name: "missing password", path: "/api/research-groups/" + grp.ID,
			body:     marchallObj(t, map[string]string{"name": "n", "description": "d", "how_to_join": "h", "docs_link": "l"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"password": fieldRequired}),
		},
		{
			name: "wrong password", path: "/api/research-groups/" + grp.ID, body: body("nope"),
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errInvalidPassword),
		},
		{
			name: "unknown id", path: "/api/research-groups/nope", body: body("pwd123"),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errGroupNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPut, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("own password", func(t *testing.T) {
		req, rec := newRequest(http.MethodPut, "/api/research-groups/"+grp.ID, body("pwd123"))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %v", rec.Code, rec.Body.String())
		}
		var updated group.Group
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if updated.Name != "연구회 (개편)" || updated.DocsLink != "https://docs.example.com/v2" {
			t.Errorf("updated = %+v", updated)
		}
		if !updated.UpdatedAt.After(grp.UpdatedAt) {
			t.Errorf("updatedAt not refreshed: %v", updated.UpdatedAt)
		}
		if !updated.CreatedAt.Equal(grp.CreatedAt) {
			t.Errorf("createdAt changed: %v != %v", updated.CreatedAt, grp.CreatedAt)
		}
	})

	t.Run("admin password", func(t *testing.T) {
		req, rec := newRequest(http.MethodPut, "/api/research-groups/"+grp.ID, body(adminPwd))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; body %v", rec.Code, rec.Body.String())
		}
	})
}

func Test_groupApi_destroy(t *testing.T) {
	app, grpRepo, _ := newApp(t)

	grp := testutil.CreateGroup(t, grpRepo, "연구회", "설명", "가입 안내", "https://docs.example.com", "pwd123")
	body := func(pwd string) []byte {
		return marchallObj(t, map[string]string{"password": pwd})
	}
	deleted := marchallObj(t, httpMsg{Message: "Research group deleted successfully"})

	tests := []httpTest{
		{
			name: "missing password", path: "/api/research-groups/" + grp.ID, body: []byte(`{}`),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"password": fieldRequired}),
		},
		{
			name: "wrong password", path: "/api/research-groups/" + grp.ID, body: body("nope"),
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errInvalidPassword),
		},
		{
			name: "unknown id", path: "/api/research-groups/nope", body: body("pwd123"),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errGroupNotFound),
		},
		{
			name: "own password", path: "/api/research-groups/" + grp.ID, body: body("pwd123"),
			wantCode: http.StatusOK, wantData: deleted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodDelete, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	if _, err := grpRepo.GetGroupByID(context.Background(), grp.ID); !errors.Is(err, group.ErrNotFound) {
		t.Errorf("group still present after delete: %v", err)
	}

	t.Run("admin password", func(t *testing.T) {
		grp := testutil.CreateGroup(t, grpRepo, "연구회 2", "설명", "가입 안내", "https://docs.example.com", "pwd123")
		req, rec := newRequest(http.MethodDelete, "/api/research-groups/"+grp.ID, body(adminPwd))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: deleted}, rec)
	})
}
